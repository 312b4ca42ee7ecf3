package http

import (
	"encoding/json"
	"net/http"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/chat"
	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/response"
)

type ChatHandler interface {
	Ask(w http.ResponseWriter, r *http.Request)
}

type chatHandlerImpl struct {
	chatService chat.Service
}

func NewChatHandler(chatService chat.Service) ChatHandler {
	return &chatHandlerImpl{chatService: chatService}
}

type askRequest struct {
	Question string       `json:"question"`
	Context  chat.Context `json:"context"`
}

// Ask implements ChatHandler
func (h *chatHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	answer, err := h.chatService.Ask(r.Context(), req.Question, req.Context)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, answer)
}
