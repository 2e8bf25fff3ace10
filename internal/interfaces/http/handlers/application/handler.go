package application

import (
	"github.com/gin-gonic/gin"

	"sanad/internal/application/application/usecases"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type ApplicationHandler struct {
	submitFinancialUC   usecases.SubmitFinancialApplicationExecutor
	submitMedicalUC     usecases.SubmitMedicalApplicationExecutor
	submitEducationalUC usecases.SubmitEducationalApplicationExecutor
	submitOtherUC       usecases.SubmitOtherApplicationExecutor
	listApplicationsUC  usecases.ListMyApplicationsExecutor
	logger              logger.Interface
}

func NewApplicationHandler(
	submitFinancialUC usecases.SubmitFinancialApplicationExecutor,
	submitMedicalUC usecases.SubmitMedicalApplicationExecutor,
	submitEducationalUC usecases.SubmitEducationalApplicationExecutor,
	submitOtherUC usecases.SubmitOtherApplicationExecutor,
	listApplicationsUC usecases.ListMyApplicationsExecutor,
) *ApplicationHandler {
	return &ApplicationHandler{
		submitFinancialUC:   submitFinancialUC,
		submitMedicalUC:     submitMedicalUC,
		submitEducationalUC: submitEducationalUC,
		submitOtherUC:       submitOtherUC,
		listApplicationsUC:  listApplicationsUC,
		logger:              logger.NewLogger(),
	}
}

// SubmitFinancial handles POST /applications/financial
func (h *ApplicationHandler) SubmitFinancial(c *gin.Context) {
	var req SubmitFinancialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for financial application", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitFinancialUC.Execute(c.Request.Context(), req.ToCommand(c.GetString(constants.ContextKeyExternalUserID)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toSubmitResponse(result), "Application submitted successfully.")
}

// SubmitMedical handles POST /applications/medical
func (h *ApplicationHandler) SubmitMedical(c *gin.Context) {
	var req SubmitMedicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for medical application", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitMedicalUC.Execute(c.Request.Context(), req.ToCommand(c.GetString(constants.ContextKeyExternalUserID)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toSubmitResponse(result), "Application submitted successfully.")
}

// SubmitEducational handles POST /applications/educational
func (h *ApplicationHandler) SubmitEducational(c *gin.Context) {
	var req SubmitEducationalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for educational application", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitEducationalUC.Execute(c.Request.Context(), req.ToCommand(c.GetString(constants.ContextKeyExternalUserID)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toSubmitResponse(result), "Application submitted successfully.")
}

// SubmitOther handles POST /applications/other
func (h *ApplicationHandler) SubmitOther(c *gin.Context) {
	var req SubmitOtherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for other application", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitOtherUC.Execute(c.Request.Context(), req.ToCommand(c.GetString(constants.ContextKeyExternalUserID)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toSubmitResponse(result), "Application submitted successfully.")
}

// ListMyApplications handles GET /applications
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	result, err := h.listApplicationsUC.Execute(c.Request.Context(), usecases.ListMyApplicationsQuery{
		ExternalUserID: c.GetString(constants.ContextKeyExternalUserID),
	})
	if err != nil {
		utils.ListErrorResponseWithError(c, err, []ApplicationResponse{})
		return
	}

	utils.ListSuccessResponse(c, toApplicationResponses(result))
}
