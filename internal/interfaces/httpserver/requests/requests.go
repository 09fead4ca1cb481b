// Package requests contains HTTP request DTOs for the vision-chat-api.
package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Field errors report the JSON key of the offending field.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	}
}

// ChatMessageRequest is the body of POST /chat/message.
type ChatMessageRequest struct {
	Message        string `json:"message" binding:"required,min=1,max=1000"`
	Context        string `json:"context,omitempty" binding:"omitempty,max=5000"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// TextAnalysisRequest is the body of POST /text/analyze.
type TextAnalysisRequest struct {
	Text         string `json:"text" binding:"required,min=1,max=10000"`
	AnalysisType string `json:"analysis_type,omitempty" binding:"omitempty,oneof=sentiment summary comprehensive"`
}

// ValidationMessage turns a binding error into a client-facing message.
func ValidationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		msgs := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "request body is not valid JSON"
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field %s must be a %s", typeErr.Field, typeErr.Type.String())
	}

	return err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
