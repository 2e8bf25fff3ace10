package application

import (
	"time"

	"sanad/internal/application/application/usecases"
)

type SubmitFinancialRequest struct {
	Reason          string  `json:"reason" validate:"required,min=10,max=500"`
	AmountRequested float64 `json:"amountRequested" validate:"required,gt=0"`
	AdditionalInfo  string  `json:"additionalInfo" validate:"omitempty,max=1000"`
}

func (r SubmitFinancialRequest) ToCommand(externalUserID string) usecases.SubmitFinancialApplicationCommand {
	return usecases.SubmitFinancialApplicationCommand{
		ExternalUserID:  externalUserID,
		Reason:          r.Reason,
		AmountRequested: r.AmountRequested,
		AdditionalInfo:  r.AdditionalInfo,
	}
}

type SubmitMedicalRequest struct {
	Condition          string   `json:"condition" validate:"required,min=5,max=500"`
	TreatmentRequired  string   `json:"treatmentRequired" validate:"required,min=5,max=1000"`
	EstimatedCost      *float64 `json:"estimatedCost" validate:"omitempty,gt=0"`
	HospitalClinicName string   `json:"hospitalClinicName" validate:"omitempty,max=200"`
	AdditionalInfo     string   `json:"additionalInfo" validate:"omitempty,max=1000"`
}

func (r SubmitMedicalRequest) ToCommand(externalUserID string) usecases.SubmitMedicalApplicationCommand {
	return usecases.SubmitMedicalApplicationCommand{
		ExternalUserID:     externalUserID,
		Condition:          r.Condition,
		TreatmentRequired:  r.TreatmentRequired,
		EstimatedCost:      r.EstimatedCost,
		HospitalClinicName: r.HospitalClinicName,
		AdditionalInfo:     r.AdditionalInfo,
	}
}

type SubmitEducationalRequest struct {
	StudentName         string   `json:"studentName" validate:"required,max=256"`
	SchoolOrInstitution string   `json:"schoolOrInstitution" validate:"required,max=256"`
	GradeOrLevel        string   `json:"gradeOrLevel" validate:"required,max=100"`
	AssistanceNeeded    string   `json:"assistanceNeeded" validate:"required,min=10,max=1000"`
	EstimatedCost       *float64 `json:"estimatedCost" validate:"omitempty,gt=0"`
	AdditionalInfo      string   `json:"additionalInfo" validate:"omitempty,max=1000"`
}

func (r SubmitEducationalRequest) ToCommand(externalUserID string) usecases.SubmitEducationalApplicationCommand {
	return usecases.SubmitEducationalApplicationCommand{
		ExternalUserID:      externalUserID,
		StudentName:         r.StudentName,
		SchoolOrInstitution: r.SchoolOrInstitution,
		GradeOrLevel:        r.GradeOrLevel,
		AssistanceNeeded:    r.AssistanceNeeded,
		EstimatedCost:       r.EstimatedCost,
		AdditionalInfo:      r.AdditionalInfo,
	}
}

type SubmitOtherRequest struct {
	RequestType    string   `json:"requestType" validate:"required,min=3,max=100"`
	Description    string   `json:"description" validate:"required,min=10,max=2000"`
	EstimatedCost  *float64 `json:"estimatedCost" validate:"omitempty,gt=0"`
	AdditionalInfo string   `json:"additionalInfo" validate:"omitempty,max=1000"`
}

func (r SubmitOtherRequest) ToCommand(externalUserID string) usecases.SubmitOtherApplicationCommand {
	return usecases.SubmitOtherApplicationCommand{
		ExternalUserID: externalUserID,
		RequestType:    r.RequestType,
		Description:    r.Description,
		EstimatedCost:  r.EstimatedCost,
		AdditionalInfo: r.AdditionalInfo,
	}
}

type ApplicationResponse struct {
	ID          uint                   `json:"id"`
	Type        string                 `json:"type"`
	Status      string                 `json:"status"`
	FormData    map[string]interface{} `json:"formData,omitempty"`
	SubmittedAt *time.Time             `json:"submittedAt,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func toSubmitResponse(result *usecases.SubmitApplicationResult) ApplicationResponse {
	return ApplicationResponse{
		ID:          result.ApplicationID,
		Type:        result.Type,
		Status:      result.Status,
		SubmittedAt: result.SubmittedAt,
	}
}

func toApplicationResponses(result *usecases.ListMyApplicationsResult) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(result.Applications))
	for _, app := range result.Applications {
		responses = append(responses, ApplicationResponse{
			ID:          app.ApplicationID,
			Type:        app.Type,
			Status:      app.Status,
			FormData:    app.FormData,
			SubmittedAt: app.SubmittedAt,
			CreatedAt:   app.CreatedAt,
		})
	}
	return responses
}
