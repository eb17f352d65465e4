package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"patient-chatbot/internal/chat"
	"patient-chatbot/internal/delivery/dto"
	"patient-chatbot/internal/usecase"
	"patient-chatbot/pkg/response"
	"patient-chatbot/pkg/validator"

	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	validator   *validator.CustomValidator
	log         *logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, validator *validator.CustomValidator, log *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		validator:   validator,
		log:         log,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	req, err := decodeChatRequest(r)
	if err != nil {
		response.Reply(w, http.StatusBadRequest, chat.EmptyMessageReply)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.log.Debugf("Rejected chat request: %v", h.validator.FormatValidationErrors(err))
		response.Reply(w, http.StatusBadRequest, chat.EmptyMessageReply)
		return
	}

	reply, err := h.chatUsecase.HandleMessage(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyMessage) {
			response.Reply(w, http.StatusBadRequest, chat.EmptyMessageReply)
			return
		}
		h.log.Errorf("Failed to handle chat message: %+v", err)
		response.Reply(w, http.StatusInternalServerError, chat.ServerErrorReply)
		return
	}

	response.JSON(w, http.StatusOK, reply)
}

// decodeChatRequest accepts JSON bodies and urlencoded form posts.
func decodeChatRequest(r *http.Request) (dto.ChatRequest, error) {
	var req dto.ChatRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Message = r.PostForm.Get("message")
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}
