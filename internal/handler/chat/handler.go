package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
	"github.com/rohitsharma/rohitai/backend/internal/model/chat"
	chatService "github.com/rohitsharma/rohitai/backend/internal/service/chat"
	"github.com/rohitsharma/rohitai/backend/pkg/utils"
)

// Answerer 提供无状态问答与当前规则表
type Answerer interface {
	Reply(ctx context.Context, text string) intent.Result
	Dispatcher() *intent.Dispatcher
}

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc  *chatService.Service
	answerer Answerer
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, answerer Answerer) *Handler {
	return &Handler{
		chatSvc:  chatSvc,
		answerer: answerer,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}/messages", h.handleListMessages)
	r.Post("/messages", h.handleSubmitMessage)
	r.Post("/ask", h.handleAsk)
	r.Get("/intents", h.handleListIntents)
}

type sessionResponse struct {
	chat.Session
	Messages []chat.Message `json:"messages"`
}

// handleCreateSession 创建会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	messages, err := h.chatSvc.LoadTranscript(r.Context(), session.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, sessionResponse{Session: session, Messages: messages})
}

// handleListMessages 返回会话记录
func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	conv, err := h.chatSvc.Conversation(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"pending":   conv.Pending(),
		"messages":  conv.CurrentLog(),
	})
}

// handleSubmitMessage 提交用户消息
func (h *Handler) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Content   string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	accepted, err := h.chatSvc.Submit(r.Context(), payload.SessionID, payload.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	status := "queued"
	if !accepted {
		status = "ignored"
	}
	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": status})
}

// handleAsk 无会话的单次问答
func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Blank input is answered with the fallback, like any other unmatched text.
	utils.RespondJSON(w, http.StatusOK, h.answerer.Reply(r.Context(), payload.Message))
}

// handleListIntents 按优先级返回规则表
func (h *Handler) handleListIntents(w http.ResponseWriter, _ *http.Request) {
	d := h.answerer.Dispatcher()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"rules":    d.Rules(),
		"fallback": d.Fallback(),
	})
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, chatService.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondError(w, http.StatusInternalServerError, err.Error())
}
