// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Internal packages
	"github.com/olavblj/clawdr/internal/agent"
	"github.com/olavblj/clawdr/internal/common/database"
	"github.com/olavblj/clawdr/internal/config"
	"github.com/olavblj/clawdr/internal/dates"
	"github.com/olavblj/clawdr/internal/matching"
	"github.com/olavblj/clawdr/internal/messaging"
	"github.com/olavblj/clawdr/internal/profile"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Clawdr Agent Matchmaking API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Printf("✅ Configuration loaded")

	// 3. Validate configuration
	log.Println("\n✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect to PostgreSQL
	log.Println("\n🗄️  Step 4: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("❌ Failed to ping PostgreSQL:", err)
	}
	log.Println("✅ Connected to PostgreSQL successfully")

	// 5. Connect to Redis (optional, used for registration rate limiting)
	log.Println("\n📮 Step 5: Connecting to Redis...")
	var redisClient *redis.Client

	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable: %v, continuing without Redis", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		log.Println("⚠️  Redis URL not configured, skipping Redis connection")
	}

	// 6. Run database migrations
	log.Println("\n🔨 Step 6: Running database migrations...")
	if err := runMigrations(db); err != nil {
		log.Printf("❌ Migration error: %v", err)
		log.Fatal("Failed to run migrations")
	}
	log.Println("✅ Database migrations completed")

	// 7. Initialize Agent module
	log.Println("\n🤖 Step 7: Initializing Agent module...")

	agentRepo := agent.NewPostgresRepository(db)
	agentService := agent.NewService(agentRepo)
	agentHandler := agent.NewHandler(agentService, cfg.BaseURL)
	authMiddleware := agent.NewMiddleware(agentService)

	var registerLimiter *agent.RateLimiter
	if redisClient != nil {
		registerLimiter = agent.NewRateLimiter(redisClient, cfg.RegisterWindow, cfg.RegisterMax)
		log.Println("   ✅ Registration rate limiting enabled")
	} else {
		log.Println("   ⚠️  Registration rate limiting disabled - Redis not available")
	}
	log.Println("✅ Agent module initialized")

	// 8. Initialize Profile module
	log.Println("\n👤 Step 8: Initializing Profile module...")

	profileRepo := profile.NewPostgresRepository(db)
	profileService := profile.NewService(profileRepo, profile.Limits{
		MinAge:       cfg.MinAge,
		MaxAge:       cfg.MaxAge,
		MaxInterests: cfg.MaxInterests,
	})
	profileHandler := profile.NewHandler(profileService)
	log.Println("✅ Profile module initialized")

	// 9. Initialize Matching module
	log.Println("\n💘 Step 9: Initializing Matching module...")

	matchRepo := matching.NewPostgresRepository(db)
	matchService := matching.NewService(profileRepo, matchRepo, cfg.DefaultBatchSize)
	matchHandler := matching.NewHandler(matchService)
	log.Println("✅ Matching module initialized")

	// 10. Initialize Dates module
	log.Println("\n📅 Step 10: Initializing Dates module...")

	datesRepo := dates.NewPostgresRepository(db)
	datesService := dates.NewService(profileRepo, matchRepo, datesRepo)
	datesHandler := dates.NewHandler(datesService)
	log.Println("✅ Dates module initialized")

	// 11. Initialize Messaging module
	log.Println("\n💬 Step 11: Initializing Messaging module...")

	messagingRepo := messaging.NewPostgresRepository(db)
	messagingService := messaging.NewService(profileRepo, matchRepo, messagingRepo)
	messagingHandler := messaging.NewHandler(messagingService)
	log.Println("✅ Messaging module initialized")

	// 12. Setup routes
	log.Println("\n🛣️  Step 12: Setting up routes...")
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/api", apiInfo).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	agent.RegisterRoutes(router, agentHandler, authMiddleware, registerLimiter)
	log.Println("   ✅ Agent routes registered")

	profile.RegisterRoutes(router, profileHandler, authMiddleware)
	log.Println("   ✅ Profile routes registered")

	matching.RegisterRoutes(router, matchHandler, authMiddleware)
	log.Println("   ✅ Matching routes registered")

	dates.RegisterRoutes(router, datesHandler, authMiddleware)
	log.Println("   ✅ Dates routes registered")

	messaging.RegisterRoutes(router, messagingHandler, authMiddleware)
	log.Println("   ✅ Messaging routes registered")

	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 13. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

var startTime = time.Now()

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// apiInfo returns API information
func apiInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{
		"name": "Clawdr Agent Matchmaking API",
		"version": "1.0.0",
		"status": "running",
		"endpoints": {
			"health": "GET /health",
			"metrics": "GET /metrics",
			"agents": {
				"register": "POST /api/v1/agents/register",
				"claim": "POST /api/v1/agents/claim/{code}",
				"status": "GET /api/v1/agents/status",
				"me": "GET /api/v1/agents/me"
			},
			"profiles": {
				"create": "POST /api/v1/profiles",
				"me": "GET /api/v1/profiles/me",
				"update": "PATCH /api/v1/profiles/me",
				"deactivate": "DELETE /api/v1/profiles/me",
				"get": "GET /api/v1/profiles/{id}"
			},
			"matches": {
				"discover": "GET /api/v1/matches/discover",
				"like": "POST /api/v1/matches/{profileId}/like",
				"pass": "POST /api/v1/matches/{profileId}/pass",
				"batchLike": "POST /api/v1/matches/batch-like",
				"list": "GET /api/v1/matches"
			},
			"dates": {
				"propose": "POST /api/v1/dates/propose",
				"list": "GET /api/v1/dates",
				"respond": "POST /api/v1/dates/{proposalId}/respond"
			},
			"messages": {
				"send": "POST /api/v1/messages",
				"list": "GET /api/v1/messages/match/{matchId}",
				"unread": "GET /api/v1/messages/unread"
			}
		}
	}`))
}

// Middleware functions

// loggingMiddleware logs all requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Printf("→ %s %s from %s", r.Method, r.RequestURI, r.RemoteAddr)

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// runMigrations executes database migrations
func runMigrations(db *sqlx.DB) error {
	log.Println("   - Creating tables if they don't exist...")

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS agents (
			id UUID PRIMARY KEY,
			api_key TEXT UNIQUE NOT NULL,
			claim_code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			claimed BOOLEAN NOT NULL DEFAULT FALSE,
			claimed_by TEXT,
			claimed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_agents_api_key ON agents(api_key)`,
		`CREATE INDEX IF NOT EXISTS idx_agents_claim_code ON agents(claim_code)`,

		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			agent_id UUID UNIQUE NOT NULL REFERENCES agents(id),
			name TEXT NOT NULL,
			age INT DEFAULT 0,
			gender TEXT DEFAULT '',
			location TEXT DEFAULT '',
			location_lat TEXT,
			location_lng TEXT,
			bio TEXT NOT NULL DEFAULT '',
			interests JSONB NOT NULL DEFAULT '[]',
			photos JSONB NOT NULL DEFAULT '[]',
			looking_for JSONB,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_active ON profiles(active)`,

		`CREATE TABLE IF NOT EXISTS matches (
			id UUID PRIMARY KEY,
			profile1_id UUID NOT NULL REFERENCES profiles(id),
			profile2_id UUID NOT NULL REFERENCES profiles(id),
			score INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			profile1_accepted BOOLEAN NOT NULL DEFAULT FALSE,
			profile2_accepted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (profile1_id, profile2_id),
			CHECK (profile1_id < profile2_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_profile1 ON matches(profile1_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_profile2 ON matches(profile2_id)`,

		`CREATE TABLE IF NOT EXISTS date_proposals (
			id UUID PRIMARY KEY,
			match_id UUID NOT NULL REFERENCES matches(id),
			proposed_by_agent_id UUID NOT NULL REFERENCES agents(id),
			countered_by_agent_id UUID REFERENCES agents(id),
			proposed_time TIMESTAMPTZ,
			location TEXT NOT NULL DEFAULT '',
			location_details TEXT NOT NULL DEFAULT '',
			activity TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			counter_proposal JSONB,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_date_proposals_match ON date_proposals(match_id)`,

		`CREATE TABLE IF NOT EXISTS messages (
			id UUID PRIMARY KEY,
			match_id UUID NOT NULL REFERENCES matches(id),
			from_agent_id UUID NOT NULL REFERENCES agents(id),
			to_agent_id UUID NOT NULL REFERENCES agents(id),
			content TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'agent',
			from_human TEXT,
			read BOOLEAN NOT NULL DEFAULT FALSE,
			read_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_match ON messages(match_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_unread ON messages(to_agent_id) WHERE read = FALSE`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
