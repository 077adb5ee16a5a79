package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zapbytes/pkg/logger"
)

// Error response field names
const (
	FieldError   = "error"
	FieldMessage = "message"
	FieldCode    = "code"
	FieldDetails = "details"
)

// OK writes a 200 response with the given body
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the given body
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Accepted writes a 202 response with the given body
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, data)
}

// Error writes an error response in JSON format
func Error(c *gin.Context, statusCode int, message string, err error) {
	errorResp := gin.H{
		FieldError:   true,
		FieldMessage: message,
		FieldCode:    statusCode,
	}

	if err != nil {
		errorResp[FieldDetails] = err.Error()
		logger.Error("API error",
			zap.String("message", message),
			zap.Error(err),
			zap.Int("status_code", statusCode))
	}

	c.JSON(statusCode, errorResp)
}

// BadRequest writes a 400 error response
func BadRequest(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// NotFound writes a 404 error response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Internal writes a 500 error response
func Internal(c *gin.Context, message string, err error) {
	Error(c, http.StatusInternalServerError, message, err)
}

// Unavailable writes a 503 error response
func Unavailable(c *gin.Context, message string, err error) {
	Error(c, http.StatusServiceUnavailable, message, err)
}
