package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"secaware_backend/internal/model"
	"secaware_backend/internal/service"
	"secaware_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
	ExportService *service.ExportService
}

func NewReportController(reportService *service.ReportService, exportService *service.ExportService) *ReportController {
	return &ReportController{
		ReportService: reportService,
		ExportService: exportService,
	}
}

// GetUserProgress godoc
// @Summary Own progress report
// @Description Overall and per-type statistics plus the ten most recent attempts.
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserProgressReport}
// @Router /api/reports/progress [get]
func (c *ReportController) GetUserProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.ReportService.GetUserProgress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// GetOrganizationReport godoc
// @Summary Organization-wide report
// @Description Totals, per-type and per-department statistics for the requester's organization.
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.OrganizationReport}
// @Failure 403 {object} util.Response
// @Router /api/reports/organization [get]
func (c *ReportController) GetOrganizationReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.ReportService.GetOrganizationReport(ctx.Request.Context(), claims.Organization)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// GetSimulationResults godoc
// @Summary Detailed results for one simulation type
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Simulation type" Enums(phishing, password, social)
// @Success 200 {object} util.Response{data=[]model.SimulationResult}
// @Failure 400 {object} util.Response
// @Router /api/reports/results/{type} [get]
func (c *ReportController) GetSimulationResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.ReportService.GetSimulationResults(claims.UserID, model.ScenarioType(ctx.Param("type")))
	if err != nil {
		if errors.Is(err, util.ErrInvalidScenarioType) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, results)
}

// ExportUserReport godoc
// @Summary Export a user report
// @Description Exports the assembled user report as json, csv or xlsx. Other users' reports require the admin or trainer role.
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param userId query int false "Target user, defaults to the requester"
// @Param format query string false "Export format" Enums(json, csv, xlsx) default(json)
// @Success 200 {object} util.Response{data=model.UserReport}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reports/export/user [get]
func (c *ReportController) ExportUserReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	format, err := service.ParseExportFormat(ctx.Query("format"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := claims.UserID
	if idStr := ctx.Query("userId"); idStr != "" {
		userID, err = util.ParseUint(idStr)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	report, err := c.ReportService.GetUserReport(claims, userID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	switch format {
	case service.FormatCSV:
		data, err := c.ExportService.UserReportCSV(report)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		c.sendAttachment(ctx, "text/csv", exportFilename("user-report", "csv"), data)
	case service.FormatXLSX:
		data, err := c.ExportService.UserReportXLSX(report)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		c.sendAttachment(ctx, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exportFilename("user-report", "xlsx"), data)
	default:
		util.Success(ctx, report)
	}
}

// ExportOrganizationReport godoc
// @Summary Export the organization report
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param format query string false "Export format" Enums(json, csv, xlsx) default(json)
// @Success 200 {object} util.Response{data=model.OrganizationReport}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/reports/export/organization [get]
func (c *ReportController) ExportOrganizationReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	format, err := service.ParseExportFormat(ctx.Query("format"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.ReportService.GetOrganizationReport(ctx.Request.Context(), claims.Organization)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	switch format {
	case service.FormatCSV:
		data, err := c.ExportService.OrganizationReportCSV(claims.Organization, report)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		c.sendAttachment(ctx, "text/csv", exportFilename("organization-report", "csv"), data)
	case service.FormatXLSX:
		data, err := c.ExportService.OrganizationReportXLSX(claims.Organization, report)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		c.sendAttachment(ctx, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exportFilename("organization-report", "xlsx"), data)
	default:
		util.Success(ctx, report)
	}
}

func (c *ReportController) sendAttachment(ctx *gin.Context, contentType, filename string, data []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, contentType, data)
}

func exportFilename(prefix, ext string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
}
