// Package response renders service results and typed errors as HTTP
// responses.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raahsarthi/service-route/internal/domain"
)

// Success renders data with a 200 status.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest renders a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps a typed application error to its HTTP status and renders the
// short user-facing message. Upstream causes stay out of the payload.
func Error(c *gin.Context, err error) {
	c.JSON(statusFor(domain.CodeOf(err)), gin.H{"error": domain.MessageOf(err)})
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeLocationNotFound,
		domain.CodeNoRouteFound, domain.CodeInvalidRoute:
		return http.StatusBadRequest
	case domain.CodeUpstreamTimeout, domain.CodeUpstream:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
