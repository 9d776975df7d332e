package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/sns-consult-backend/internal/platform/apierr"
)

// ErrorBody is the only error shape clients see.
type ErrorBody struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

// RespondAPIError maps err through apierr. Internal details are attached to
// the gin context for the request logger and never written to the client.
func RespondAPIError(c *gin.Context, err error) {
	ae := apierr.As(err)
	if ae == nil {
		ae = apierr.Internal("internal_error", nil)
	}
	if ae.Err != nil {
		_ = c.Error(ae.Err)
	}
	RespondError(c, ae.Status, ae.Message)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
