package stream

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rohitsharma/rohitai/backend/internal/model/chat"
	chatService "github.com/rohitsharma/rohitai/backend/internal/service/chat"
	"github.com/rohitsharma/rohitai/backend/internal/service/responder"
	"github.com/rohitsharma/rohitai/backend/pkg/utils"
)

// Handler streams assistant replies via Server-Sent Events
type Handler struct {
	chatSvc *chatService.Service
	logger  *zap.Logger
}

// New creates a new stream handler
func New(chatSvc *chatService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		chatSvc: chatSvc,
		logger:  logger.Named("stream"),
	}
}

// StreamResponse represents a streaming response chunk
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	Intent    string `json:"intent,omitempty"`
	MessageID string `json:"messageId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// RegisterRoutes 注册流式路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream/{sessionID}", h.handleStream)
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	userMessage := r.URL.Query().Get("message")

	if strings.TrimSpace(userMessage) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	conv, err := h.chatSvc.Conversation(r.Context(), sessionID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chatService.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	reply, ok := conv.Enqueue(userMessage)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	utils.SetupSSEHeaders(w)
	h.send(w, flusher, StreamResponse{Event: "start", SessionID: sessionID})
	h.send(w, flusher, StreamResponse{Event: "pending", SessionID: sessionID})

	var msg chat.Message
	select {
	case <-r.Context().Done():
		// The reply still lands in the conversation log.
		h.logger.Debug("client left before reply", zap.String("session", sessionID))
		return
	case msg = <-reply:
	}

	if err := h.streamReply(w, flusher, msg); err != nil {
		h.send(w, flusher, StreamResponse{Event: "error", SessionID: sessionID, Error: err.Error()})
		h.logger.Warn("stream failed", zap.String("session", sessionID), zap.Error(err))
		return
	}

	h.send(w, flusher, StreamResponse{Event: "end", SessionID: sessionID, Finished: true})
	h.logger.Debug("stream completed", zap.String("session", sessionID), zap.String("intent", msg.Intent))
}

// streamReply emits the reply paragraph by paragraph followed by the full message.
func (h *Handler) streamReply(w http.ResponseWriter, flusher http.Flusher, msg chat.Message) error {
	stream := responder.Stream(msg.Intent, msg.Content)
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 4)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			h.send(w, flusher, StreamResponse{
				Event:     "delta",
				SessionID: msg.SessionID,
				Content:   chunk.Content,
			})
		}
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return err
	}

	h.send(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: msg.SessionID,
		MessageID: msg.ID,
		Intent:    msg.Intent,
		Content:   response.Content,
	})
	return nil
}

func (h *Handler) send(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	if err := utils.SendSSEChunk(w, flusher, response); err != nil {
		h.logger.Debug("failed to write sse chunk", zap.String("event", response.Event), zap.Error(err))
	}
}
