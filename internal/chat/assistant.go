package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Response modes reported to the client so the frontend can show
// degraded-service hints.
const (
	ModeAssistant     = "assistant"
	ModeFallback      = "fallback"
	ModeErrorFallback = "error_fallback"
)

type Reply struct {
	Reply          string         `json:"reply"`
	ConversationID string         `json:"conversation_id"`
	Model          string         `json:"model"`
	Mode           string         `json:"mode"`
	Intent         string         `json:"intent"`
	UrgencyAlert   *UrgencyResult `json:"urgency_alert,omitempty"`
}

// Assistant orchestrates intent classification, prompt assembly, the
// model call, and history persistence. A nil client puts it in
// permanent fallback mode.
type Assistant struct {
	client Client
	store  ConversationStore
	log    *logrus.Logger
}

func NewAssistant(client Client, store ConversationStore, log *logrus.Logger) *Assistant {
	return &Assistant{
		client: client,
		store:  store,
		log:    log,
	}
}

// Respond never returns an error to the caller: degraded paths answer
// with a canned reply and a mode flag instead.
func (a *Assistant) Respond(ctx context.Context, conversationID, message, userContext string) Reply {
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	intent := ClassifyIntent(message)

	reply := Reply{
		ConversationID: conversationID,
		Intent:         intent,
	}

	if urgency := AnalyzeUrgency(message); urgency.IsUrgent {
		reply.UrgencyAlert = &urgency
	}

	if a.client == nil {
		reply.Reply = FallbackReply(message)
		reply.Mode = ModeFallback
		return reply
	}

	answer, err := a.client.Complete(ctx, a.assemblePrompt(ctx, conversationID, message, userContext, intent))
	if err != nil {
		a.log.Warnf("chat completion failed, serving fallback: %v", err)
		reply.Reply = FallbackReply(message)
		reply.Mode = ModeErrorFallback
		return reply
	}

	reply.Reply = answer
	reply.Model = a.client.ModelName()
	reply.Mode = ModeAssistant

	if err := a.store.AppendTurn(ctx, conversationID,
		Message{Role: RoleUser, Content: message},
		Message{Role: RoleAssistant, Content: answer},
	); err != nil {
		a.log.Warnf("failed to persist chat turn for conversation %s: %v", conversationID, err)
	}

	return reply
}

func (a *Assistant) assemblePrompt(ctx context.Context, conversationID, message, userContext, intent string) []Message {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	if guidance, ok := intentGuidance[intent]; ok {
		sb.WriteString("\n\n")
		sb.WriteString(guidance)
	}
	if userContext != "" {
		sb.WriteString("\n\nAbout this user: ")
		sb.WriteString(userContext)
	}

	messages := []Message{{Role: RoleSystem, Content: sb.String()}}

	history, err := a.store.History(ctx, conversationID)
	if err != nil {
		a.log.Warnf("failed to load chat history for conversation %s: %v", conversationID, err)
	} else {
		messages = append(messages, history...)
	}

	return append(messages, Message{Role: RoleUser, Content: message})
}

// ClearConversation drops the stored history for a conversation.
func (a *Assistant) ClearConversation(ctx context.Context, conversationID string) error {
	return a.store.Clear(ctx, conversationID)
}
