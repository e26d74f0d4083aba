package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rohitsharma/rohitai/backend/internal/model/profile"
	"github.com/rohitsharma/rohitai/backend/pkg/utils"
)

// Handler 作品集内容的HTTP处理器
type Handler struct {
	store profile.Store
}

// New 创建profile处理器
func New(store profile.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes 注册profile相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.handleProfile)
		r.Get("/projects", h.handleListProjects)
		r.Get("/projects/{projectID}", h.handleGetProject)
		r.Get("/experience", h.handleExperience)
		r.Get("/lab", h.handleLab)
	})
}

func (h *Handler) handleProfile(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Profile())
}

func (h *Handler) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Projects())
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := h.store.FindProject(chi.URLParam(r, "projectID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "project not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, project)
}

func (h *Handler) handleExperience(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Experience())
}

func (h *Handler) handleLab(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Lab())
}
