package responder_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
	"github.com/rohitsharma/rohitai/backend/internal/service/responder"
)

func newService(t *testing.T) *responder.Service {
	t.Helper()
	svc, err := responder.NewService(context.Background(), nil, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestReplyMatchesDispatcher(t *testing.T) {
	svc := newService(t)
	d := intent.Default()

	for _, msg := range []string{"Why should we hire him?", "tell me about MUJGPT", "", "asdfghjkl nonsense query"} {
		got := svc.Reply(context.Background(), msg)
		assert.Equal(t, d.Match(msg), got, "message %q", msg)
	}
}

func TestReplyFlagsFallback(t *testing.T) {
	svc := newService(t)

	got := svc.Reply(context.Background(), "   ")
	assert.True(t, got.Fallback)
	assert.Equal(t, intent.FallbackName, got.Rule)
	assert.Equal(t, intent.DefaultFallback, got.Response)
}

func TestSetDispatcherSwapsTable(t *testing.T) {
	svc := newService(t)
	custom := intent.NewDispatcher([]intent.Rule{{Name: "ping", Triggers: []string{"ping"}, Response: "pong"}}, "")

	svc.SetDispatcher(custom)
	svc.SetDispatcher(nil)

	got := svc.Reply(context.Background(), "PING")
	assert.Equal(t, "ping", got.Rule)
	assert.Equal(t, "pong", got.Response)
	assert.Same(t, custom, svc.Dispatcher())
}

func TestStreamConcatenatesToResponse(t *testing.T) {
	result := intent.Default().Match("what are his weaknesses")
	stream := responder.Stream(result.Rule, result.Response)
	defer stream.Close()

	var chunks []*schema.Message
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, "weaknesses", chunk.Name)
		chunks = append(chunks, chunk)
	}

	require.Greater(t, len(chunks), 1)
	merged, err := schema.ConcatMessages(chunks)
	require.NoError(t, err)
	assert.Equal(t, result.Response, merged.Content)
}

func TestChunks(t *testing.T) {
	assert.Equal(t, []string{"one\n\n", "two"}, responder.Chunks("one\n\ntwo"))
	assert.Equal(t, []string{"single"}, responder.Chunks("single"))
	assert.Equal(t, []string{""}, responder.Chunks(""))
	assert.Equal(t, "a\n\nb\n\n", strings.Join(responder.Chunks("a\n\nb\n\n"), ""))
}
