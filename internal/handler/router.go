package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/rohitsharma/rohitai/backend/internal/handler/chat"
	"github.com/rohitsharma/rohitai/backend/internal/handler/profile"
	"github.com/rohitsharma/rohitai/backend/internal/handler/stream"
	"github.com/rohitsharma/rohitai/backend/internal/handler/ws"
	profileModel "github.com/rohitsharma/rohitai/backend/internal/model/profile"
	chatService "github.com/rohitsharma/rohitai/backend/internal/service/chat"
	"github.com/rohitsharma/rohitai/backend/pkg/utils"
)

const requestTimeout = 60 * time.Second

// Deps groups what the router needs from the rest of the process.
type Deps struct {
	Profiles       profileModel.Store
	Chat           *chatService.Service
	Answerer       chat.Answerer
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger.Named("http")))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		// Long-lived connections are kept out of the request timeout.
		stream.New(deps.Chat, logger).RegisterRoutes(api)
		ws.New(deps.Chat, logger).RegisterRoutes(api)

		api.Group(func(api chi.Router) {
			api.Use(middleware.Timeout(requestTimeout))
			chat.New(deps.Chat, deps.Answerer).RegisterRoutes(api)
			profile.New(deps.Profiles).RegisterRoutes(api)
		})
	})

	return r
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("elapsed", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
