package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/cardiovital/server/internal/auth"
	"github.com/cardiovital/server/internal/blob"
	"github.com/cardiovital/server/internal/coach"
	"github.com/cardiovital/server/internal/config"
	"github.com/cardiovital/server/internal/meals"
	"github.com/cardiovital/server/internal/medications"
	"github.com/cardiovital/server/internal/notifications"
	"github.com/cardiovital/server/internal/plans"
	"github.com/cardiovital/server/internal/preferences"
	"github.com/cardiovital/server/internal/profiles"
	"github.com/cardiovital/server/internal/recommend"
	"github.com/cardiovital/server/internal/reports"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/storage/memory"
	"github.com/cardiovital/server/internal/storage/postgres"
	"github.com/cardiovital/server/internal/userctx"
)

// appStorage is what the server needs from a storage backend. Both the
// memory and postgres implementations satisfy it.
type appStorage interface {
	storage.Storage
	storage.MedicationsStorage
	storage.MealAnalysesStorage
	storage.NotificationsStorage
	storage.PreferencesStorage
	storage.ChatStorage
	storage.ReportsStorage

	// ListProfileOwners feeds the reminder scheduler.
	ListProfileOwners(ctx context.Context) ([]string, error)
}

// Server is the HTTP server with all services wired.
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	storage        appStorage
	authMiddleware *auth.Middleware
	scheduler      *notifications.Scheduler
}

// New creates a server with storage and routes initialized.
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	s.initStorage()
	s.routes()
	return s
}

// initStorage picks Postgres when configured, memory otherwise.
// A failed Postgres connection falls back to memory so local runs
// never need a database.
func (s *Server) initStorage() {
	if s.config.DatabaseURL == "" {
		log.Println("Using in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("Connecting to PostgreSQL...")
	ctx := context.Background()
	pgStorage, err := postgres.New(ctx, s.config.DatabaseURL)
	if err != nil {
		log.Printf("PostgreSQL connection failed: %v", err)
		log.Println("Falling back to in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("PostgreSQL connected")
	s.storage = pgStorage
}

// routes registers the route table.
func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	// Auth API (no auth required)
	authService := auth.NewService(s.config)
	authHandler := auth.NewHandlers(authService)
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev - local dev token
	s.mux.HandleFunc("POST /v1/auth/dev", authHandler.HandleDevAuth)

	// Profile API
	profileService := profiles.NewService(s.storage)
	profileHandler := profiles.NewHandler(profileService)

	s.mux.HandleFunc("GET /v1/profile", profileHandler.HandleGet)
	s.mux.HandleFunc("PUT /v1/profile", profileHandler.HandleUpsert)
	s.mux.HandleFunc("POST /v1/profile/onboarding", profileHandler.HandleCompleteOnboarding)
	s.mux.HandleFunc("POST /v1/profile/plan", profileHandler.HandleChangePlan)

	// Medications API (free on every plan)
	medicationsService := medications.NewService(s.storage)
	medicationsHandler := medications.NewHandler(medicationsService)

	s.mux.HandleFunc("GET /v1/medications", medicationsHandler.HandleList)
	s.mux.HandleFunc("POST /v1/medications", medicationsHandler.HandleCreate)
	s.mux.HandleFunc("PUT /v1/medications/{id}", medicationsHandler.HandleUpdate)
	s.mux.HandleFunc("DELETE /v1/medications/{id}", medicationsHandler.HandleDelete)
	s.mux.HandleFunc("POST /v1/medications/{id}/taken", medicationsHandler.HandleMarkTaken)

	// Preferences API
	preferencesService := preferences.NewService(s.storage)
	preferencesHandler := preferences.NewHandler(preferencesService)

	s.mux.HandleFunc("GET /v1/preferences", preferencesHandler.HandleGet)
	s.mux.HandleFunc("PUT /v1/preferences", preferencesHandler.HandleUpdate)

	// Plans API (catalog is public to authenticated users)
	plansHandler := plans.NewHandler(preferencesService)
	s.mux.HandleFunc("GET /v1/plans", plansHandler.HandleList)

	// Recommendations API. Tips and summary are the free tier;
	// exercises and diet need a paid plan.
	recommendService := recommend.NewService(s.storage, s.storage, preferencesService)
	recommendHandler := recommend.NewHandler(recommendService)

	s.mux.HandleFunc("GET /v1/recommendations/exercises", s.planGate(plans.FeatureExercises, recommendHandler.HandleExercises))
	s.mux.HandleFunc("GET /v1/recommendations/diet", s.planGate(plans.FeatureDiet, recommendHandler.HandleDiet))
	s.mux.HandleFunc("GET /v1/recommendations/tips", recommendHandler.HandleTips)
	s.mux.HandleFunc("GET /v1/recommendations/summary", recommendHandler.HandleSummary)

	// Coach API
	coachService := coach.NewService(s.storage, s.storage, s.storage, preferencesService)
	coachHandler := coach.NewHandler(coachService)

	s.mux.HandleFunc("POST /v1/coach/messages", s.planGate(plans.FeatureCoach, coachHandler.HandleSend))
	s.mux.HandleFunc("GET /v1/coach/messages", s.planGate(plans.FeatureCoach, coachHandler.HandleList))

	// Meals API
	mealsService := meals.NewService(s.storage, preferencesService, s.config.MealHistoryLimit)
	mealsHandler := meals.NewHandler(mealsService)

	s.mux.HandleFunc("POST /v1/meals/analyses", s.planGate(plans.FeatureMealAnalysis, mealsHandler.HandleAnalyze))
	s.mux.HandleFunc("GET /v1/meals/analyses", s.planGate(plans.FeatureMealAnalysis, mealsHandler.HandleList))
	s.mux.HandleFunc("DELETE /v1/meals/analyses/{id}", s.planGate(plans.FeatureMealAnalysis, mealsHandler.HandleDelete))

	// Notifications/Inbox API
	notificationsService := notifications.NewService(
		s.storage,
		s.storage,
		s.storage,
		s.storage,
		s.config.ReminderToleranceMinutes,
	)
	notificationsHandler := notifications.NewHandler(notificationsService)
	s.scheduler = notifications.NewScheduler(notificationsService, s.storage)

	s.mux.HandleFunc("GET /v1/inbox", s.planGate(plans.FeatureReminders, notificationsHandler.HandleList))
	s.mux.HandleFunc("GET /v1/inbox/unread-count", s.planGate(plans.FeatureReminders, notificationsHandler.HandleUnreadCount))
	s.mux.HandleFunc("POST /v1/inbox/read", s.planGate(plans.FeatureReminders, notificationsHandler.HandleMarkRead))
	s.mux.HandleFunc("POST /v1/inbox/read-all", s.planGate(plans.FeatureReminders, notificationsHandler.HandleMarkAllRead))
	s.mux.HandleFunc("POST /v1/inbox/generate", s.planGate(plans.FeatureReminders, notificationsHandler.HandleGenerate))

	// Reports API
	blobStore, blobMode, err := blob.NewBlobStore(s.config.Blob, log.Default())
	if err != nil {
		log.Fatalf("blob store init failed: %v", err)
	}
	log.Printf("Reports blob mode: %s", blobMode)

	reportsGenerator := reports.NewGenerator(s.storage, s.storage)
	reportsService := reports.NewService(
		s.storage,
		reportsGenerator,
		blobStore,
		s.config.ReportsMaxRangeDays,
		s.config.Blob.S3.PresignTTLSeconds,
	)
	reportsHandler := reports.NewHandler(reportsService)

	s.mux.HandleFunc("POST /v1/reports", s.planGate(plans.FeatureReports, reportsHandler.HandleCreate))
	s.mux.HandleFunc("GET /v1/reports", s.planGate(plans.FeatureReports, reportsHandler.HandleList))
	s.mux.HandleFunc("GET /v1/reports/{id}/download", s.planGate(plans.FeatureReports, reportsHandler.HandleDownload))
	s.mux.HandleFunc("DELETE /v1/reports/{id}", s.planGate(plans.FeatureReports, reportsHandler.HandleDelete))
}

// planGate rejects callers whose plan lacks the feature.
func (s *Server) planGate(feature plans.Feature, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || userID == "" {
			userID = "default"
		}

		plan := plans.Essencial
		if profile, found, err := s.storage.GetProfile(r.Context(), userID); err == nil && found {
			plan = profile.Plan
		}

		if !plans.HasFeatureAccess(plan, feature) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]map[string]string{
				"error": {
					"code":    "plan_required",
					"message": "Upgrade your plan to use this feature",
				},
			})
			return
		}

		next(w, r)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// StartScheduler runs the reminder scheduler until ctx is cancelled.
func (s *Server) StartScheduler(ctx context.Context) {
	s.scheduler.Start(ctx)
}

// Handler returns the full middleware chain:
// CORS -> Rate Limit -> Auth -> Router.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	if s.authMiddleware != nil && s.config.AuthMode != "none" {
		if s.config.AuthRequired {
			handler = s.authMiddleware.RequireAuth(handler)
		} else {
			handler = s.authMiddleware.OptionalAuth(handler)
		}
	}
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)
	return handler
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	log.Printf("Server listening on http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)

	return http.ListenAndServe(addr, s.Handler())
}

// Close releases the storage connection.
func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
