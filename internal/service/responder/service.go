package responder

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
)

// Service runs the intent dispatcher behind an eino chain so transports can
// consume replies as schema messages and streams.
type Service struct {
	current atomic.Pointer[intent.Dispatcher]
	chain   compose.Runnable[string, *schema.Message]
	logger  *zap.Logger
}

// NewService compiles the resolve -> render chain. A nil dispatcher means the
// built-in rule table.
func NewService(ctx context.Context, dispatcher *intent.Dispatcher, logger *zap.Logger) (*Service, error) {
	if dispatcher == nil {
		dispatcher = intent.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	svc := &Service{logger: logger.Named("responder")}
	svc.current.Store(dispatcher)

	chain := compose.NewChain[string, *schema.Message]()
	chain.AppendLambda(compose.InvokableLambda(svc.resolve))
	chain.AppendLambda(compose.InvokableLambda(render))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile responder chain: %w", err)
	}

	svc.chain = runnable
	return svc, nil
}

// Reply answers one user message. It never fails: if the chain errors the
// dispatcher is called directly.
func (s *Service) Reply(ctx context.Context, text string) intent.Result {
	msg, err := s.chain.Invoke(ctx, text)
	if err != nil || msg == nil {
		s.logger.Warn("responder chain failed, resolving directly", zap.Error(err))
		return s.current.Load().Match(text)
	}

	return intent.Result{
		Rule:     msg.Name,
		Response: msg.Content,
		Fallback: msg.Name == intent.FallbackName,
	}
}

// SetDispatcher swaps the rule table. In-flight replies finish on the table
// they started with.
func (s *Service) SetDispatcher(d *intent.Dispatcher) {
	if d == nil {
		return
	}
	s.current.Store(d)
	s.logger.Info("rule table replaced", zap.Int("rules", len(d.Rules())))
}

// Dispatcher returns the table currently in use.
func (s *Service) Dispatcher() *intent.Dispatcher {
	return s.current.Load()
}

func (s *Service) resolve(_ context.Context, text string) (intent.Result, error) {
	return s.current.Load().Match(text), nil
}

func render(_ context.Context, result intent.Result) (*schema.Message, error) {
	msg := schema.AssistantMessage(result.Response, nil)
	msg.Name = result.Rule
	return msg, nil
}

// Stream splits a reply into paragraph chunks. Concatenating the chunks gives
// back the response byte for byte.
func Stream(intentName, response string) *schema.StreamReader[*schema.Message] {
	parts := Chunks(response)
	chunks := make([]*schema.Message, 0, len(parts))
	for _, part := range parts {
		msg := schema.AssistantMessage(part, nil)
		msg.Name = intentName
		chunks = append(chunks, msg)
	}
	return schema.StreamReaderFromArray(chunks)
}

// Chunks splits text after each blank line.
func Chunks(text string) []string {
	parts := strings.SplitAfter(text, "\n\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}
