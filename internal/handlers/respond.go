package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "Internal server error"

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validation errors name fields the way clients send them.
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.SuccessResponse(message, data))
}

// respondError converts a service error to the envelope. notFoundMessage is used
// when the error is a bare ErrNotFound without a client-facing message of its own.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	message := ""
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch status {
	case http.StatusNotFound:
		if message == "" {
			message = notFoundMessage
		}
		logger.Warn("Resource not found", slog.String("error", err.Error()))
	case http.StatusInternalServerError:
		logger.Error("Request failed", slog.String("error", err.Error()), slog.String("path", c.FullPath()))
		message = internalErrorMessage
	default:
		if message == "" {
			message = err.Error()
		}
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.JSON(status, dto.ErrorResponse(message, errorCode(status, err)))
}

func errorCode(status int, err error) string {
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		return "duplicate"
	case status == http.StatusBadRequest:
		return "validation_error"
	case status == http.StatusUnauthorized:
		return "unauthenticated"
	case status == http.StatusForbidden:
		return "forbidden"
	case status == http.StatusNotFound:
		return "not_found"
	default:
		return "internal_error"
	}
}

// respondBindError reports a body or query binding failure as a 400.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse(validationMessage(err), "validation_error"))
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s has an invalid type", typeErr.Field)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "Request body is not valid JSON"
	}
	return "Invalid request: " + err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "uppercase":
		return field + " must be uppercase"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// principal returns the authenticated caller. AuthMiddleware guarantees one on
// every /api/v1 route other than the public auth endpoints.
func principal(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse("Access denied. Please authenticate.", "unauthenticated"))
	}
	return p, ok
}
