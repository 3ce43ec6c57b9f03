package controller

import (
	"errors"
	"net/http"

	"secaware_backend/internal/model"
	"secaware_backend/internal/service"
	"secaware_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SimulationController struct {
	Service *service.SimulationService
}

func NewSimulationController(svc *service.SimulationService) *SimulationController {
	return &SimulationController{Service: svc}
}

func (c *SimulationController) listScenarios(ctx *gin.Context, t model.ScenarioType) {
	scenarios, err := c.Service.ListScenarios(t)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, scenarios)
}

// GetPhishingScenarios godoc
// @Summary List phishing scenarios
// @Tags simulations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Scenario}
// @Router /api/simulations/phishing [get]
func (c *SimulationController) GetPhishingScenarios(ctx *gin.Context) {
	c.listScenarios(ctx, model.ScenarioPhishing)
}

// GetPasswordScenarios godoc
// @Summary List password scenarios
// @Tags simulations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Scenario}
// @Router /api/simulations/password [get]
func (c *SimulationController) GetPasswordScenarios(ctx *gin.Context) {
	c.listScenarios(ctx, model.ScenarioPassword)
}

// GetSocialScenarios godoc
// @Summary List social engineering scenarios
// @Tags simulations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Scenario}
// @Router /api/simulations/social [get]
func (c *SimulationController) GetSocialScenarios(ctx *gin.Context) {
	c.listScenarios(ctx, model.ScenarioSocial)
}

// swagger:model ActionSubmission
type ActionSubmission struct {
	ScenarioID uint   `json:"scenarioId" binding:"required"`
	Action     string `json:"action" binding:"required"`
	TimeSpent  int    `json:"timeSpent"`
}

// swagger:model PasswordSubmission
type PasswordSubmission struct {
	ScenarioID uint   `json:"scenarioId" binding:"required"`
	Password   string `json:"password"`
	TimeSpent  int    `json:"timeSpent"`
}

func (c *SimulationController) submitAction(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ActionSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	verdict, err := c.Service.SubmitAction(claims.UserID, req.ScenarioID, req.Action, req.TimeSpent)
	if err != nil {
		c.submitError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"feedback": verdict})
}

func (c *SimulationController) submitError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrScenarioNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidSubmission), errors.Is(err, util.ErrInvalidScenarioType):
		util.Error(ctx, http.StatusBadRequest, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// SubmitPhishingResponse godoc
// @Summary Submit a phishing response
// @Description Judges the chosen action against the scenario's answer key and records the attempt.
// @Tags simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ActionSubmission true "Response"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/simulations/phishing/submit [post]
func (c *SimulationController) SubmitPhishingResponse(ctx *gin.Context) {
	c.submitAction(ctx)
}

// SubmitSocialResponse godoc
// @Summary Submit a social engineering response
// @Tags simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ActionSubmission true "Response"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/simulations/social/submit [post]
func (c *SimulationController) SubmitSocialResponse(ctx *gin.Context) {
	c.submitAction(ctx)
}

// SubmitPasswordResponse godoc
// @Summary Submit a password challenge response
// @Description Scores the candidate password and records the attempt with its strength.
// @Tags simulations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body PasswordSubmission true "Response"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/simulations/password/submit [post]
func (c *SimulationController) SubmitPasswordResponse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req PasswordSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	verdict, err := c.Service.SubmitPassword(claims.UserID, req.ScenarioID, req.Password, req.TimeSpent)
	if err != nil {
		c.submitError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"feedback": verdict})
}
