package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/sns-consult-backend/internal/http/response"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/services"
)

type TTSHandler struct {
	log    *logger.Logger
	speech services.SpeechService
}

func NewTTSHandler(log *logger.Logger, speech services.SpeechService) *TTSHandler {
	return &TTSHandler{log: log.With("handler", "TTSHandler"), speech: speech}
}

type ttsRequest struct {
	Text string `json:"text"`
}

// POST /tts
func (h *TTSHandler) Speak(c *gin.Context) {
	var req ttsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "No text provided")
		return
	}
	audio, err := h.speech.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	defer audio.Close()

	c.DataFromReader(http.StatusOK, -1, "audio/mpeg", audio, nil)
}
