package information

import (
	"github.com/gin-gonic/gin"

	"sanad/internal/application/information/usecases"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type BenefitResponse struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

type FAQResponse struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type InformationHandler struct {
	listBenefitsUC usecases.ListBenefitsExecutor
	listFAQsUC     usecases.ListFAQsExecutor
	logger         logger.Interface
}

func NewInformationHandler(
	listBenefitsUC usecases.ListBenefitsExecutor,
	listFAQsUC usecases.ListFAQsExecutor,
) *InformationHandler {
	return &InformationHandler{
		listBenefitsUC: listBenefitsUC,
		listFAQsUC:     listFAQsUC,
		logger:         logger.NewLogger(),
	}
}

// ListBenefits handles GET /information/benefits?lang=en
func (h *InformationHandler) ListBenefits(c *gin.Context) {
	result, err := h.listBenefitsUC.Execute(c.Request.Context(), usecases.ListBenefitsQuery{
		Language: c.Query("lang"),
	})
	if err != nil {
		utils.ListErrorResponseWithError(c, err, []BenefitResponse{})
		return
	}

	responses := make([]BenefitResponse, 0, len(result.Benefits))
	for _, b := range result.Benefits {
		responses = append(responses, BenefitResponse{
			ID:          b.BenefitID,
			Slug:        b.Slug,
			Title:       b.Title,
			Description: b.Description,
			Category:    b.Category,
		})
	}

	utils.ListSuccessResponse(c, responses)
}

// ListFAQs handles GET /information/faqs?lang=en
func (h *InformationHandler) ListFAQs(c *gin.Context) {
	result, err := h.listFAQsUC.Execute(c.Request.Context(), usecases.ListFAQsQuery{
		Language: c.Query("lang"),
	})
	if err != nil {
		utils.ListErrorResponseWithError(c, err, []FAQResponse{})
		return
	}

	responses := make([]FAQResponse, 0, len(result.FAQs))
	for _, f := range result.FAQs {
		responses = append(responses, FAQResponse{
			ID:       f.FAQID,
			Question: f.Question,
			Answer:   f.Answer,
		})
	}

	utils.ListSuccessResponse(c, responses)
}
