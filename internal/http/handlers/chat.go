package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/sns-consult-backend/internal/http/response"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/services"
)

type ChatHandler struct {
	log  *logger.Logger
	chat services.ChatService
}

func NewChatHandler(log *logger.Logger, chat services.ChatService) *ChatHandler {
	return &ChatHandler{log: log.With("handler", "ChatHandler"), chat: chat}
}

// POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid chat body", "error", err)
		response.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	reply, err := h.chat.Reply(c.Request.Context(), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, reply)
}
