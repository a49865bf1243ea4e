package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/logger"
	"pricetrack/internal/validator"
)

// Response is the envelope of every successful response.
type Response struct {
	OK      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListMeta describes a limited list window.
type ListMeta struct {
	Limit int `json:"limit"`
	Count int `json:"count"`
}

// parsePathID parses a positive integer path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{OK: true, Data: data})
}

func respondOKWithMeta(c *gin.Context, data, meta interface{}) {
	c.JSON(http.StatusOK, Response{OK: true, Data: data, Meta: meta})
}

// respondWithError writes a consistent JSON error envelope. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Code: appErr.Code, Message: appErr.Message})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	})
}

// bindingError turns a request binding failure into an INVALID_INPUT error.
func bindingError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, validator.Describe(err))
}
