package profile

import (
	"time"

	"sanad/internal/application/profile/usecases"
)

type UpdateProfileRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=256"`
	LastName    string `json:"lastName" validate:"required,max=256"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=50"`
	Address     string `json:"address" validate:"omitempty"`
}

func (r UpdateProfileRequest) ToCommand(externalUserID string) usecases.UpdateProfileCommand {
	return usecases.UpdateProfileCommand{
		ExternalUserID: externalUserID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		PhoneNumber:    r.PhoneNumber,
		Address:        r.Address,
	}
}

type ProfileResponse struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Address     string    `json:"address,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProfileResponse(result *usecases.GetProfileResult) ProfileResponse {
	return ProfileResponse{
		ID:          result.BeneficiaryID,
		FirstName:   result.FirstName,
		LastName:    result.LastName,
		PhoneNumber: result.PhoneNumber,
		Address:     result.Address,
		Status:      result.Status,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}
}
