package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
	"github.com/rohitsharma/rohitai/backend/internal/model/chat"
)

var ErrSessionNotFound = errors.New("session not found")

// Responder produces the assistant reply for one user message. It must not
// fail: unmatched input is answered with a fallback.
type Responder interface {
	Reply(ctx context.Context, text string) intent.Result
}

// DispatcherResponder adapts a bare dispatcher to Responder.
type DispatcherResponder struct {
	Dispatcher *intent.Dispatcher
}

// Reply implements Responder.
func (r DispatcherResponder) Reply(_ context.Context, text string) intent.Result {
	return r.Dispatcher.Match(text)
}

// Options tunes conversation behavior.
type Options struct {
	// ThinkingDelay is waited before each reply so the UI can show a pending state.
	ThinkingDelay time.Duration
	// Greeting, when set, opens every new conversation as an assistant message.
	Greeting string
	// MaxSessions bounds the registry; zero means unbounded.
	MaxSessions int
	Logger      *zap.Logger
}

// Service encapsulates conversation state management.
type Service struct {
	mu            sync.RWMutex
	conversations map[string]*Conversation
	responder     Responder
	opts          Options
	logger        *zap.Logger
}

// NewService bootstraps the in-memory chat service. A nil responder answers
// with the built-in rule table.
func NewService(responder Responder, opts Options) *Service {
	if responder == nil {
		responder = DispatcherResponder{Dispatcher: intent.Default()}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ThinkingDelay < 0 {
		opts.ThinkingDelay = 0
	}

	return &Service{
		conversations: make(map[string]*Conversation),
		responder:     responder,
		opts:          opts,
		logger:        logger.Named("chat"),
	}
}

// CreateSession provisions an anonymous conversation.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	conv := newConversation(session, s.responder, s.opts.ThinkingDelay, s.opts.Greeting, s.logger)

	s.mu.Lock()
	if s.opts.MaxSessions > 0 && len(s.conversations) >= s.opts.MaxSessions {
		s.evictLocked()
	}
	s.conversations[session.ID] = conv
	total := len(s.conversations)
	s.mu.Unlock()

	s.logger.Info("session created", zap.String("session", session.ID), zap.Int("sessions", total))
	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	conv, err := s.Conversation(ctx, sessionID)
	if err != nil {
		return chat.Session{}, err
	}
	return conv.Session(), nil
}

// Conversation returns the live conversation for a session.
func (s *Service) Conversation(_ context.Context, sessionID string) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return conv, nil
}

// Submit queues a user message on a session. The bool is false when the
// message was blank and therefore ignored.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (bool, error) {
	conv, err := s.Conversation(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return conv.Submit(text), nil
}

// LoadTranscript returns a snapshot of the messages for the provided session.
func (s *Service) LoadTranscript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	conv, err := s.Conversation(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return conv.CurrentLog(), nil
}

// Drain waits until every conversation has answered its queued messages.
func (s *Service) Drain(ctx context.Context) error {
	s.mu.RLock()
	convs := make([]*Conversation, 0, len(s.conversations))
	for _, conv := range s.conversations {
		convs = append(convs, conv)
	}
	s.mu.RUnlock()

	for _, conv := range convs {
		if err := conv.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of live sessions.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}

// evictLocked drops the least recently active conversation, preferring idle
// ones so queued replies are not lost.
func (s *Service) evictLocked() {
	var (
		victim     string
		victimTime time.Time
		victimBusy bool
	)
	for id, conv := range s.conversations {
		last, busy := conv.lastActivity()
		better := victim == "" ||
			(victimBusy && !busy) ||
			(victimBusy == busy && last.Before(victimTime))
		if better {
			victim, victimTime, victimBusy = id, last, busy
		}
	}
	if victim == "" {
		return
	}

	delete(s.conversations, victim)
	s.logger.Info("session evicted", zap.String("session", victim), zap.Bool("busy", victimBusy))
}
