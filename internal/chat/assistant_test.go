package chat

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type stubClient struct {
	reply string
	err   error
	calls int
	last  []Message
}

func (s *stubClient) Complete(_ context.Context, messages []Message) (string, error) {
	s.calls++
	s.last = messages
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubClient) ModelName() string { return "stub-model" }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRespondWithModel(t *testing.T) {
	client := &stubClient{reply: "Sure, I can help with that."}
	store := NewMemoryConversationStore(20)
	assistant := NewAssistant(client, store, quietLogger())

	reply := assistant.Respond(context.Background(), "conv-1", "I want to book an appointment", "")

	if reply.Mode != ModeAssistant {
		t.Errorf("mode = %q, want %q", reply.Mode, ModeAssistant)
	}
	if reply.Reply != "Sure, I can help with that." {
		t.Errorf("unexpected reply %q", reply.Reply)
	}
	if reply.Model != "stub-model" {
		t.Errorf("model = %q, want stub-model", reply.Model)
	}
	if reply.Intent != IntentAppointment {
		t.Errorf("intent = %q, want %q", reply.Intent, IntentAppointment)
	}
	if reply.ConversationID != "conv-1" {
		t.Errorf("conversation_id = %q, want conv-1", reply.ConversationID)
	}

	history, err := store.History(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Role != RoleUser || history[1].Role != RoleAssistant {
		t.Errorf("history roles = %s,%s; want user,assistant", history[0].Role, history[1].Role)
	}
}

func TestRespondGeneratesConversationID(t *testing.T) {
	assistant := NewAssistant(nil, NewMemoryConversationStore(20), quietLogger())

	reply := assistant.Respond(context.Background(), "", "hello", "")
	if reply.ConversationID == "" {
		t.Error("expected a generated conversation id")
	}
}

func TestRespondFallbackWithoutClient(t *testing.T) {
	assistant := NewAssistant(nil, NewMemoryConversationStore(20), quietLogger())

	reply := assistant.Respond(context.Background(), "conv-1", "hello", "")
	if reply.Mode != ModeFallback {
		t.Errorf("mode = %q, want %q", reply.Mode, ModeFallback)
	}
	if reply.Reply == "" {
		t.Error("fallback reply is empty")
	}
	if reply.Model != "" {
		t.Errorf("model = %q, want empty in fallback mode", reply.Model)
	}
}

func TestRespondErrorFallback(t *testing.T) {
	client := &stubClient{err: errors.New("upstream timeout")}
	store := NewMemoryConversationStore(20)
	assistant := NewAssistant(client, store, quietLogger())

	reply := assistant.Respond(context.Background(), "conv-1", "I have a question", "")
	if reply.Mode != ModeErrorFallback {
		t.Errorf("mode = %q, want %q", reply.Mode, ModeErrorFallback)
	}
	if reply.Reply == "" {
		t.Error("error fallback reply is empty")
	}

	// Failed turns must not pollute the history.
	history, _ := store.History(context.Background(), "conv-1")
	if len(history) != 0 {
		t.Errorf("history length = %d, want 0 after a failed model call", len(history))
	}
}

func TestRespondUrgencyAlert(t *testing.T) {
	assistant := NewAssistant(nil, NewMemoryConversationStore(20), quietLogger())

	reply := assistant.Respond(context.Background(), "conv-1", "I have severe chest pain", "")
	if reply.UrgencyAlert == nil {
		t.Fatal("expected an urgency alert")
	}
	if reply.UrgencyAlert.UrgencyLevel != UrgencyHigh {
		t.Errorf("urgency level = %q, want %q", reply.UrgencyAlert.UrgencyLevel, UrgencyHigh)
	}

	calm := assistant.Respond(context.Background(), "conv-1", "can I book a checkup", "")
	if calm.UrgencyAlert != nil {
		t.Error("did not expect an urgency alert for a routine message")
	}
}

func TestPromptAssemblyIncludesHistoryAndContext(t *testing.T) {
	client := &stubClient{reply: "ok"}
	store := NewMemoryConversationStore(20)
	assistant := NewAssistant(client, store, quietLogger())

	assistant.Respond(context.Background(), "conv-1", "first question", "")
	assistant.Respond(context.Background(), "conv-1", "second question", "student, SSE department")

	// system + 2 prior turns + current message
	if len(client.last) != 4 {
		t.Fatalf("prompt length = %d, want 4", len(client.last))
	}
	if client.last[0].Role != RoleSystem {
		t.Errorf("first message role = %q, want system", client.last[0].Role)
	}
	if got := client.last[len(client.last)-1].Content; got != "second question" {
		t.Errorf("last prompt message = %q, want the current question", got)
	}

	found := false
	for _, m := range client.last {
		if m.Role == RoleSystem && strings.Contains(m.Content, "About this user") &&
			strings.Contains(m.Content, "SSE department") {
			found = true
		}
	}
	if !found {
		t.Error("system prompt does not carry the user context")
	}
}

func TestHistoryCapTrimsOldestTurns(t *testing.T) {
	client := &stubClient{reply: "ok"}
	store := NewMemoryConversationStore(4)
	assistant := NewAssistant(client, store, quietLogger())

	for _, msg := range []string{"one", "two", "three"} {
		assistant.Respond(context.Background(), "conv-1", msg, "")
	}

	history, _ := store.History(context.Background(), "conv-1")
	if len(history) != 4 {
		t.Fatalf("history length = %d, want cap of 4", len(history))
	}
	if history[0].Content != "two" {
		t.Errorf("oldest surviving message = %q, want %q", history[0].Content, "two")
	}
}

func TestClearConversation(t *testing.T) {
	client := &stubClient{reply: "ok"}
	store := NewMemoryConversationStore(20)
	assistant := NewAssistant(client, store, quietLogger())

	assistant.Respond(context.Background(), "conv-1", "hello there", "")
	if err := assistant.ClearConversation(context.Background(), "conv-1"); err != nil {
		t.Fatalf("ClearConversation: %v", err)
	}

	history, _ := store.History(context.Background(), "conv-1")
	if len(history) != 0 {
		t.Errorf("history length = %d after clear, want 0", len(history))
	}
}
