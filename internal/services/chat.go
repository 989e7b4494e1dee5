package services

import (
	"context"
	"strings"

	"github.com/Nitinnn1403/kisan-drishti/internal/core/backend"
	"github.com/Nitinnn1403/kisan-drishti/internal/models"
)

// ChatService drives the advisory chat widget. The backend owns the
// conversation: every turn carries the full history out and the returned
// history replaces ours wholesale.
type ChatService struct {
	api     *backend.Client
	session *Session
}

func NewChatService(api *backend.Client, session *Session) *ChatService {
	return &ChatService{api: api, session: session}
}

// Open initializes the chat on first use by sending the init_chat event.
// Later opens return nil; the widget keeps its transcript.
func (s *ChatService) Open(ctx context.Context) (*models.ChatResponse, error) {
	if s.session.ChatReady() {
		return nil, nil
	}
	resp, err := s.api.Chat(ctx, models.ChatRequest{Event: "init_chat"})
	if err != nil {
		return nil, err
	}
	s.session.MarkChatReady()
	s.session.ReplaceChatHistory(resp.History)
	return resp, nil
}

// Send posts one user turn (typed message or quick-reply payload). Blank
// input is dropped without a request. On failure the history is left
// untouched so a retry resends the same conversation.
func (s *ChatService) Send(ctx context.Context, message string) (*models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, nil
	}
	resp, err := s.api.Chat(ctx, models.ChatRequest{
		Message: message,
		History: s.session.ChatHistory(),
	})
	if err != nil {
		return nil, err
	}
	s.session.ReplaceChatHistory(resp.History)
	return resp, nil
}
