package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/AanV03/Chatbot/internal/api/handlers"
	mw "github.com/AanV03/Chatbot/internal/api/middleware"
	"github.com/AanV03/Chatbot/internal/buildconfig"
	"github.com/AanV03/Chatbot/internal/config"
	"github.com/AanV03/Chatbot/internal/domain"
	"github.com/AanV03/Chatbot/internal/service"
	"github.com/AanV03/Chatbot/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App holds the router plus request counters for the metrics endpoint.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	knowledgeStore := store.NewKnowledgeStore(db)
	topicStore := store.NewTopicStore(db)
	conversationStore := store.NewConversationStore(db)
	feedbackStore := store.NewFeedbackStore(db)

	// Phrase tables and calibration are loaded once and read-only for the
	// process lifetime; concurrent queries share them without locking.
	lexicon := service.DefaultLexicon()
	cal := service.DefaultCalibration()

	// Services
	analyzer := service.NewQueryAnalyzer(knowledgeStore, topicStore, lexicon, cal, logger)
	scorer := service.NewSimilarityScorer(cal.Weights)
	simple := service.NewSimpleMatcher(knowledgeStore, lexicon, cal)
	feedbackSvc := service.NewFeedbackService(feedbackStore, logger)
	conversationSvc := service.NewConversationService(conversationStore, logger)
	searchSvc := service.NewSearchService(knowledgeStore, analyzer, scorer, simple, feedbackSvc, logger)

	// Handlers
	queryHandler := handlers.NewQueryHandler(searchSvc, conversationSvc)
	conversationHandler := handlers.NewConversationHandler(conversationSvc)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackSvc, feedbackStore)
	topicHandler := handlers.NewTopicHandler(topicStore)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/query", queryHandler.Resolve)
		r.Get("/conversations/{sessionID}", conversationHandler.History)
		r.Post("/feedback", feedbackHandler.Create)
		r.Get("/feedback", feedbackHandler.List)
		r.Route("/topics", func(r chi.Router) {
			r.Get("/", topicHandler.List)
			r.Get("/{key}", topicHandler.GetByKey)
		})
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"version":    buildconfig.Version(),
			"commit":     buildconfig.Commit(),
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy the domain interfaces at compile time.
var (
	_ domain.KnowledgeStore    = (*store.KnowledgeStore)(nil)
	_ domain.TopicStore        = (*store.TopicStore)(nil)
	_ domain.ConversationStore = (*store.ConversationStore)(nil)
	_ domain.FeedbackSink      = (*store.FeedbackStore)(nil)
	_ domain.FeedbackLister    = (*store.FeedbackStore)(nil)
)
