package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rohitsharma/rohitai/backend/internal/model/chat"
)

// GreetingIntent tags the opening assistant message of a conversation.
const GreetingIntent = "greeting"

type submission struct {
	text  string
	reply chan chat.Message
}

// Conversation owns one append-only message log. Submissions are processed
// one at a time in arrival order by a worker goroutine that exits as soon as
// the queue is empty.
type Conversation struct {
	session   chat.Session
	responder Responder
	delay     time.Duration
	logger    *zap.Logger

	mu         sync.Mutex
	log        []chat.Message
	queue      []submission
	running    bool
	idle       chan struct{}
	lastActive time.Time
}

func newConversation(session chat.Session, responder Responder, delay time.Duration, greeting string, logger *zap.Logger) *Conversation {
	idle := make(chan struct{})
	close(idle)

	c := &Conversation{
		session:    session,
		responder:  responder,
		delay:      delay,
		logger:     logger,
		log:        make([]chat.Message, 0, 16),
		idle:       idle,
		lastActive: session.CreatedAt,
	}

	if greeting != "" {
		c.appendLocked(chat.RoleAssistant, greeting, GreetingIntent)
	}
	return c
}

// Session returns the session this conversation belongs to.
func (c *Conversation) Session() chat.Session {
	return c.session
}

// Submit queues a user message. Blank input is ignored and reported as false.
// The user message reaches the log when its turn comes, not immediately, so
// UIs should show Pending rather than expect an instant echo in CurrentLog.
func (c *Conversation) Submit(text string) bool {
	_, ok := c.Enqueue(text)
	return ok
}

// Enqueue is Submit that also returns a channel receiving the assistant reply
// for this particular message. The channel is buffered and closed after the
// reply is sent, so callers may drop it.
func (c *Conversation) Enqueue(text string) (<-chan chat.Message, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}

	reply := make(chan chat.Message, 1)

	c.mu.Lock()
	c.queue = append(c.queue, submission{text: trimmed, reply: reply})
	c.lastActive = time.Now().UTC()
	if !c.running {
		c.running = true
		c.idle = make(chan struct{})
		go c.drain()
	}
	queued := len(c.queue)
	c.mu.Unlock()

	c.logger.Debug("message queued", zap.String("session", c.session.ID), zap.Int("queued", queued))
	return reply, true
}

// CurrentLog returns a snapshot of the log. Later appends are not visible
// through the returned slice.
func (c *Conversation) CurrentLog() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]chat.Message, len(c.log))
	copy(copied, c.log)
	return copied
}

// Pending reports whether a submission is queued or waiting for its reply.
func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Wait blocks until every submission made so far has been answered.
func (c *Conversation) Wait(ctx context.Context) error {
	c.mu.Lock()
	idle := c.idle
	c.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Conversation) lastActivity() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive, c.running
}

func (c *Conversation) drain() {
	for {
		c.mu.Lock()
		if len(c.queue) == 0 {
			c.running = false
			close(c.idle)
			c.mu.Unlock()
			return
		}
		next := c.queue[0]
		c.queue[0] = submission{}
		c.queue = c.queue[1:]
		c.appendLocked(chat.RoleUser, next.text, "")
		c.mu.Unlock()

		// Simulated thinking time; not a cancellation point.
		if c.delay > 0 {
			time.Sleep(c.delay)
		}

		result := c.responder.Reply(context.Background(), next.text)

		c.mu.Lock()
		msg := c.appendLocked(chat.RoleAssistant, result.Response, result.Rule)
		c.mu.Unlock()

		c.logger.Debug("reply appended",
			zap.String("session", c.session.ID),
			zap.String("intent", result.Rule),
			zap.Bool("fallback", result.Fallback),
		)

		next.reply <- msg
		close(next.reply)
	}
}

func (c *Conversation) appendLocked(role chat.Role, content, intentName string) chat.Message {
	msg := chat.Message{
		ID:        uuid.NewString(),
		SessionID: c.session.ID,
		Role:      role,
		Content:   content,
		Intent:    intentName,
		CreatedAt: time.Now().UTC(),
	}
	c.log = append(c.log, msg)
	c.lastActive = msg.CreatedAt
	return msg
}
