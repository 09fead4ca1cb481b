package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"jan-server/services/vision-chat-api/internal/domain/analysis"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/requests"
	"jan-server/services/vision-chat-api/internal/interfaces/httpserver/responses"
	"jan-server/services/vision-chat-api/internal/utils/platformerrors"
)

// multipartOverhead bounds the non-file bytes accepted in an upload body.
const multipartOverhead = 1 << 20

// RegisterImageRoutes registers the image analysis routes.
func RegisterImageRoutes(router gin.IRoutes, handler *handlers.AnalysisHandler) {
	router.POST("/images/analyze", analyzeImage(handler))
}

// RegisterTextRoutes registers the text analysis routes.
func RegisterTextRoutes(router gin.IRoutes, handler *handlers.AnalysisHandler) {
	router.POST("/text/analyze", analyzeText(handler))
}

// analyzeImage godoc
// @Summary      Analyze an image
// @Description  Describes an uploaded JPEG, PNG or WebP image. Provider failures are reported with success=false.
// @Tags         Images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image file"
// @Success      200 {object} responses.ImageAnalysisResponse
// @Failure      400 {object} responses.ErrorResponse
// @Router       /images/analyze [post]
func analyzeImage(handler *handlers.AnalysisHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		rules := handler.ImageRules()
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, rules.MaxFileSize+multipartOverhead)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				responses.HandleNewError(c, platformerrors.ErrorTypeValidation, tooLargeMessage(rules.MaxFileSize))
				return
			}
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "file is required")
			return
		}
		if fileHeader.Size > rules.MaxFileSize {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, tooLargeMessage(rules.MaxFileSize))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "failed to read uploaded file")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, rules.MaxFileSize+1))
		if err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "failed to read uploaded file")
			return
		}
		if int64(len(data)) > rules.MaxFileSize {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, tooLargeMessage(rules.MaxFileSize))
			return
		}
		if len(data) == 0 {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "file is empty")
			return
		}

		contentType, ok := resolveContentType(fileHeader.Header.Get("Content-Type"), data, rules)
		if !ok {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
				"Invalid file type. Please upload JPEG, PNG, or WebP images.")
			return
		}

		result := handler.AnalyzeImage(c.Request.Context(), analysis.ImageUpload{
			Filename:    fileHeader.Filename,
			ContentType: contentType,
			Data:        data,
		})
		c.JSON(http.StatusOK, result)
	}
}

// resolveContentType checks the declared type against the sniffed one. Both must
// be allowed; the sniffed type is used when the client did not declare one.
func resolveContentType(declared string, data []byte, rules analysis.ImageRules) (string, bool) {
	sniffed := mimetype.Detect(data).String()
	if !rules.Allows(sniffed) {
		return "", false
	}

	if declared == "" || analysis.NormalizeImageType(declared) == "application/octet-stream" {
		return analysis.NormalizeImageType(sniffed), true
	}
	if !rules.Allows(declared) {
		return "", false
	}
	return analysis.NormalizeImageType(declared), true
}

func tooLargeMessage(limit int64) string {
	return fmt.Sprintf("File too large. Maximum size: %.1fMB", float64(limit)/(1024*1024))
}

// analyzeText godoc
// @Summary      Analyze text
// @Description  Runs a sentiment, summary or comprehensive analysis over the text.
// @Tags         Text
// @Accept       json
// @Produce      json
// @Param        request body requests.TextAnalysisRequest true "Text to analyze"
// @Success      200 {object} responses.TextAnalysisResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /text/analyze [post]
func analyzeText(handler *handlers.AnalysisHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.TextAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, requests.ValidationMessage(err))
			return
		}

		result, err := handler.AnalyzeText(c.Request.Context(), analysis.TextRequest{
			Text:         req.Text,
			AnalysisType: analysis.Type(req.AnalysisType),
		})
		if err != nil {
			responses.HandleError(c, err, "failed to analyze text")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
