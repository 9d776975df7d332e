package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsUnwrapsWrappedError(t *testing.T) {
	inner := BadRequest("missing_text", "No text provided")
	wrapped := fmt.Errorf("tts: %w", inner)

	got := As(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, "No text provided", got.Message)
}

func TestAsHidesUnknownErrors(t *testing.T) {
	got := As(errors.New("upstream 502 from api.openai.com"))
	require.NotNil(t, got)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.NotContains(t, got.Message, "openai")
}

func TestAsNil(t *testing.T) {
	assert.Nil(t, As(nil))
}
