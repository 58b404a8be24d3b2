package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/usecase"
	"careconnect-backend/pkg/response"
	"careconnect-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	validator   *validator.CustomValidator
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, validator *validator.CustomValidator) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		validator:   validator,
	}
}

// Chat handles an assistant message. Model failures degrade to canned
// replies with a mode flag; the endpoint never answers 5xx for them.
// @Summary Send chat message
// @Tags Chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /chat/ [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reply, err := h.chatUsecase.SendMessage(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrChatRateLimited):
			response.TooManyRequests(w, "Too many chat messages, please wait a moment")
		default:
			response.InternalServerError(w, "Failed to process chat message")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chat reply", reply)
}

// ClearConversation drops a conversation's history
// @Summary Clear conversation
// @Tags Chat
// @Security BearerAuth
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} response.Response
// @Router /chat/clear/{id} [post]
func (h *ChatHandler) ClearConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["id"]
	if conversationID == "" {
		response.Error(w, http.StatusBadRequest, "Conversation ID is required", nil)
		return
	}

	if err := h.chatUsecase.ClearConversation(r.Context(), conversationID); err != nil {
		response.InternalServerError(w, "Failed to clear conversation")
		return
	}

	response.Success(w, http.StatusOK, "Conversation cleared", nil)
}

// AnalyzeUrgency runs the keyword triage over a message
// @Summary Analyze message urgency
// @Tags Chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeUrgencyRequest true "Analyze Urgency Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /chat/analyze-urgency [post]
func (h *ChatHandler) AnalyzeUrgency(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeUrgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result := h.chatUsecase.AnalyzeUrgency(&req)
	response.Success(w, http.StatusOK, "Urgency analyzed", result)
}

// HelpTopic returns static guidance for a known topic
// @Summary Get help topic
// @Tags Chat
// @Security BearerAuth
// @Produce json
// @Param topic path string true "Help topic"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chat/help/{topic} [get]
func (h *ChatHandler) HelpTopic(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]

	help, err := h.chatUsecase.GetHelpTopic(topic)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrHelpTopicNotFound):
			response.NotFound(w, "Unknown help topic")
		default:
			response.InternalServerError(w, "Failed to load help topic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Help topic retrieved", help)
}
