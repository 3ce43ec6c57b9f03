package controller

import (
	"errors"
	"strconv"

	"secaware_backend/internal/model"
	"secaware_backend/internal/service"
	"secaware_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ScenarioController is the authoring surface for trainers and admins.
type ScenarioController struct {
	Service *service.ScenarioService
}

func NewScenarioController(svc *service.ScenarioService) *ScenarioController {
	return &ScenarioController{Service: svc}
}

// CreateScenario godoc
// @Summary Create a scenario
// @Tags scenarios
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Scenario true "Scenario"
// @Success 201 {object} util.Response{data=model.Scenario}
// @Failure 400 {object} util.Response
// @Router /api/admin/scenarios [post]
func (c *ScenarioController) CreateScenario(ctx *gin.Context) {
	var scenario model.Scenario
	if err := ctx.ShouldBindJSON(&scenario); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.Create(&scenario); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, scenario)
}

// ListScenarios godoc
// @Summary List scenarios (all types, paginated)
// @Tags scenarios
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/admin/scenarios [get]
func (c *ScenarioController) ListScenarios(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	scenarios, total, err := c.Service.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"list":  scenarios,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetScenario godoc
// @Summary Scenario details
// @Tags scenarios
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Scenario id"
// @Success 200 {object} util.Response{data=model.Scenario}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/scenarios/{id} [get]
func (c *ScenarioController) GetScenario(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	scenario, err := c.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, util.ErrScenarioNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, scenario)
}

// UpdateScenario godoc
// @Summary Update a scenario
// @Tags scenarios
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Scenario id"
// @Param body body model.Scenario true "Scenario"
// @Success 200 {object} util.Response{data=model.Scenario}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/scenarios/{id} [put]
func (c *ScenarioController) UpdateScenario(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var req model.Scenario
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	scenario, err := c.Service.Update(id, &req)
	if err != nil {
		if errors.Is(err, util.ErrScenarioNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, scenario)
}

// DeleteScenario godoc
// @Summary Delete a scenario
// @Description Soft-deletes the scenario. Attempts referencing it stay in the log and keep counting in overall totals.
// @Tags scenarios
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Scenario id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/scenarios/{id} [delete]
func (c *ScenarioController) DeleteScenario(ctx *gin.Context) {
	id, err := util.ParseUint(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.Delete(id); err != nil {
		if errors.Is(err, util.ErrScenarioNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
