package utils

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"sanad/internal/shared/errors"
)

// APIResponse is the envelope every mutating endpoint returns:
// success flag, human-readable message, optional payload, and optional
// structured field errors from validation.
type APIResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  []errors.FieldError `json:"errors,omitempty"`
}

// ListAPIResponse is the envelope every listing endpoint returns.
type ListAPIResponse struct {
	Success bool        `json:"success"`
	Items   interface{} `json:"items"`
	Message string      `json:"message,omitempty"`
}

// SuccessResponse sends a successful response with a custom status code.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse sends a 201 response.
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// ListSuccessResponse sends a successful listing response.
func ListSuccessResponse(c *gin.Context, items interface{}, message ...string) {
	resp := ListAPIResponse{Success: true, Items: items}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	c.JSON(http.StatusOK, resp)
}

// ErrorResponse sends an error response with a custom status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}

// ErrorResponseWithError maps an error to the response envelope. AppErrors
// carry their own status and message; anything else is an unexpected
// failure and is masked behind a generic message so internals never leak.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, APIResponse{
			Success: false,
			Message: appErr.Message,
			Errors:  appErr.Fields,
		})
		return
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fields := make([]errors.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, errors.FieldError{
				Field:   fe.Field(),
				Message: fieldErrorMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  fields,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Message: "An error occurred.",
	})
}

// ListErrorResponseWithError is ErrorResponseWithError for listing
// endpoints, keeping the items field present (empty) on failure.
func ListErrorResponseWithError(c *gin.Context, err error, empty interface{}) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ListAPIResponse{
			Success: false,
			Items:   empty,
			Message: appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ListAPIResponse{
		Success: false,
		Items:   empty,
		Message: "An error occurred.",
	})
}
