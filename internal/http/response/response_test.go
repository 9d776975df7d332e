package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yungbote/sns-consult-backend/internal/platform/apierr"
)

func TestRespondAPIErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondAPIError(c, errors.New("dial tcp: api.openai.com refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"An internal error occurred. Please try again later."}`, rec.Body.String())
	assert.Len(t, c.Errors, 1)
}

func TestRespondAPIErrorClientError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondAPIError(c, apierr.BadRequest("missing_text", "No text provided"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No text provided"}`, rec.Body.String())
	assert.True(t, c.IsAborted())
}
