package utils

import (
	"errors"
	"net/http"
	"tripplanner/pkg/logger"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

func HandleServiceError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSchemaValidation), errors.Is(err, ErrUnexpectedBehaviorOfAI):
		log.Error("AI response error", "trace_id", traceIDOf(c), "error", err)
		RespondError(c, http.StatusBadGateway, "The planner returned an itinerary we could not read")
	default:
		log.Error("unknown error", "trace_id", traceIDOf(c), "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
