package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sanad/internal/application/profile/usecases"
	"sanad/internal/shared/constants"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type ProfileHandler struct {
	getProfileUC    usecases.GetProfileExecutor
	ensureProfileUC usecases.EnsureProfileExecutor
	updateProfileUC usecases.UpdateProfileExecutor
	logger          logger.Interface
}

func NewProfileHandler(
	getProfileUC usecases.GetProfileExecutor,
	ensureProfileUC usecases.EnsureProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:    getProfileUC,
		ensureProfileUC: ensureProfileUC,
		updateProfileUC: updateProfileUC,
		logger:          logger.NewLogger(),
	}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		ExternalUserID: c.GetString(constants.ContextKeyExternalUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProfileResponse(result))
}

// EnsureProfile handles POST /profile/ensure
func (h *ProfileHandler) EnsureProfile(c *gin.Context) {
	result, err := h.ensureProfileUC.Execute(c.Request.Context(), usecases.EnsureProfileCommand{
		ExternalUserID: c.GetString(constants.ContextKeyExternalUserID),
		GivenName:      c.GetString(constants.ContextKeyGivenName),
		FamilyName:     c.GetString(constants.ContextKeyFamilyName),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	utils.SuccessResponse(c, status, "", gin.H{"id": result.BeneficiaryID})
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(c.GetString(constants.ContextKeyExternalUserID))

	result, err := h.updateProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully.", gin.H{"id": result.BeneficiaryID})
}
