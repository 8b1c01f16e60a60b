package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jeffleon2/ebanking/internal/assistant/dto"
	"github.com/jeffleon2/ebanking/internal/assistant/intent"
	"github.com/jeffleon2/ebanking/internal/assistant/models"
	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/sirupsen/logrus"
)

const (
	ServiceName = "assistant-service"

	SystemPrompt  = "You are a professional e-banking assistant for the E-Banking 3.0 platform. Be helpful and concise. Never ask for passwords, card numbers or CVV codes."
	FallbackReply = "I'm sorry, my generative AI engine is currently resting. How else can I help you?"

	historyLimit = 50
)

type ConversationRepo interface {
	Create(ctx context.Context, l *models.ConversationLog) error
	History(ctx context.Context, userID string, limit int) ([]models.ConversationLog, error)
}

type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Accounts interface {
	PrimaryAccount(ctx context.Context, userID string) (*client.Account, error)
}

// AssistantService answers with a canned intent reply when one matches and
// asks the language model otherwise.
type AssistantService struct {
	Repo     ConversationRepo
	LLM      Completer
	Accounts Accounts
	Now      func() time.Time
}

func NewAssistantService(repo ConversationRepo, llm Completer, accounts Accounts) *AssistantService {
	return &AssistantService{
		Repo:     repo,
		LLM:      llm,
		Accounts: accounts,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *AssistantService) Chat(ctx context.Context, caller identity.Principal, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return nil, models.ErrEmptyMessage
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	resp := s.answer(ctx, caller, req.Message)

	entry := &models.ConversationLog{
		UserID:      caller.UserID,
		UserMessage: req.Message,
		AIResponse:  resp.Response,
		Source:      resp.Source,
		Intent:      resp.Intent,
		Timestamp:   s.Now(),
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		logrus.WithField("user_id", caller.UserID).Warnf("conversation not logged: %v", err)
	}
	return resp, nil
}

func (s *AssistantService) History(ctx context.Context, caller identity.Principal) ([]models.ConversationLog, error) {
	return s.Repo.History(ctx, caller.UserID, historyLimit)
}

func (s *AssistantService) answer(ctx context.Context, caller identity.Principal, msg string) *dto.ChatResponse {
	if m, ok := intent.Detect(msg); ok {
		reply := m.Reply
		if m.Name == intent.Balance {
			reply = s.balance(ctx, caller, reply)
		}
		return &dto.ChatResponse{Source: models.SourceIntent, Response: reply, Intent: m.Name}
	}

	text, err := s.LLM.Complete(ctx, SystemPrompt, msg)
	if err != nil {
		logrus.WithField("user_id", caller.UserID).Warnf("llm unavailable: %v", err)
		return &dto.ChatResponse{Source: models.SourceFallback, Response: FallbackReply}
	}
	return &dto.ChatResponse{Source: models.SourceLLM, Response: text}
}

// balance reads the primary account of the caller. The generic reply is kept
// when the account service cannot answer.
func (s *AssistantService) balance(ctx context.Context, caller identity.Principal, generic string) string {
	if s.Accounts == nil {
		return generic
	}
	acc, err := s.Accounts.PrimaryAccount(ctx, caller.UserID)
	if err != nil {
		logrus.WithField("user_id", caller.UserID).Debugf("balance lookup failed: %v", err)
		return generic
	}
	return fmt.Sprintf("The balance of your account %s is %s %s.", acc.ExternalRef, acc.Balance.StringFixed(2), acc.Currency)
}
