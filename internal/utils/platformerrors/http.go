package platformerrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPErrorResponse is the error envelope returned by every endpoint.
type HTTPErrorResponse struct {
	Error *HTTPErrorDetail `json:"error"`
}

// HTTPErrorDetail describes a failed request.
type HTTPErrorDetail struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type httpMapping struct {
	status  int
	apiType string
}

var httpMappings = map[ErrorType]httpMapping{
	ErrorTypeValidation: {http.StatusBadRequest, "validation_error"},
	ErrorTypeNotFound:   {http.StatusNotFound, "not_found_error"},
	ErrorTypeExternal:   {http.StatusBadGateway, "external_error"},
	ErrorTypeTimeout:    {http.StatusGatewayTimeout, "timeout_error"},
	ErrorTypeInternal:   {http.StatusInternalServerError, "internal_error"},
}

func mappingFor(t ErrorType) httpMapping {
	if m, ok := httpMappings[t]; ok {
		return m
	}
	return httpMappings[ErrorTypeInternal]
}

// ErrorTypeToHTTPStatus returns the response status for an error type. Unknown types are 500.
func ErrorTypeToHTTPStatus(t ErrorType) int {
	return mappingFor(t).status
}

// WriteError logs err and writes it in the error envelope. Errors outside the
// PlatformError family are reported as internal errors.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	platformErr := GetPlatformError(err)
	if platformErr == nil {
		if err != nil {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		}
		message := "unknown error"
		if err != nil {
			message = err.Error()
		}
		platformErr = NewError(c.Request.Context(), LayerRoute, ErrorTypeInternal, message, err)
	} else {
		LogError(log, platformErr)
	}

	requestID := platformErr.RequestID
	if requestID == "" {
		requestID = c.GetString("request_id")
	}

	m := mappingFor(platformErr.Type)
	c.JSON(m.status, HTTPErrorResponse{
		Error: &HTTPErrorDetail{
			Message:   platformErr.Message,
			Type:      m.apiType,
			Code:      platformErr.UUID,
			RequestID: requestID,
		},
	})
}
