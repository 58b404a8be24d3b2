package usecase

import (
	"context"
	"errors"
	"fmt"

	"careconnect-backend/internal/chat"
	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/delivery/http/middleware"
	"careconnect-backend/internal/domain/repository"
	"careconnect-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrChatRateLimited   = errors.New("too many chat messages, slow down")
	ErrHelpTopicNotFound = errors.New("unknown help topic")
)

type ChatUsecase interface {
	SendMessage(ctx context.Context, req *dto.ChatRequest) (*chat.Reply, error)
	ClearConversation(ctx context.Context, conversationID string) error
	AnalyzeUrgency(req *dto.AnalyzeUrgencyRequest) chat.UrgencyResult
	GetHelpTopic(topic string) (*dto.HelpTopicResponse, error)
}

type chatUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	assistant *chat.Assistant
	limiter   *service.ChatLimiter
	userRepo  repository.UserRepository
}

func NewChatUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	assistant *chat.Assistant,
	limiter *service.ChatLimiter,
	userRepo repository.UserRepository,
) ChatUsecase {
	return &chatUsecase{
		db:        db,
		log:       log,
		assistant: assistant,
		limiter:   limiter,
		userRepo:  userRepo,
	}
}

func (u *chatUsecase) SendMessage(ctx context.Context, req *dto.ChatRequest) (*chat.Reply, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	allowed, err := u.limiter.Allow(ctx, userID)
	if err != nil {
		// The limiter fails open; log and continue.
		u.log.Warnf("Chat rate limiter unavailable for user %d: %+v", userID, err)
	}
	if !allowed {
		return nil, ErrChatRateLimited
	}

	userContext := req.UserContext
	if userContext == "" {
		userContext = u.buildUserContext(ctx, userID)
	}

	reply := u.assistant.Respond(ctx, req.ConversationID, req.Message, userContext)
	return &reply, nil
}

func (u *chatUsecase) ClearConversation(ctx context.Context, conversationID string) error {
	return u.assistant.ClearConversation(ctx, conversationID)
}

func (u *chatUsecase) AnalyzeUrgency(req *dto.AnalyzeUrgencyRequest) chat.UrgencyResult {
	return chat.AnalyzeUrgency(req.Message)
}

func (u *chatUsecase) GetHelpTopic(topic string) (*dto.HelpTopicResponse, error) {
	guidance, ok := chat.HelpTopics[topic]
	if !ok {
		return nil, ErrHelpTopicNotFound
	}

	return &dto.HelpTopicResponse{
		Topic:    topic,
		Guidance: guidance,
	}, nil
}

// buildUserContext assembles a short profile summary for the prompt.
// Best effort only; the chat works without it.
func (u *chatUsecase) buildUserContext(ctx context.Context, userID int) string {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil || user == nil {
		return ""
	}

	context := fmt.Sprintf("%s, role %s", user.FullName, user.Role)
	if user.Department != "" {
		context += ", department " + user.Department
	}
	if user.Major != "" {
		context += ", major " + user.Major
	}
	return context
}
