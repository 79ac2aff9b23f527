package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"srinufoods/auth"
	"srinufoods/cart"
	"srinufoods/catalog"
	"srinufoods/config"
	"srinufoods/dashboard"
	"srinufoods/db"
	"srinufoods/orders"
	"srinufoods/profile"
	"srinufoods/ratelim"
	"srinufoods/rdx"
	"srinufoods/routes"
	"srinufoods/seed"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware tags each request with an id and logs method, path and
// duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s from %s – %v", requestID, r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(identity *sql.DB, database *db.Database) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	rateLimiter := ratelim.NewRateLimiter()

	catalogStore := catalog.NewStore(database.Categories, database.MenuItems)
	cartEngine := cart.NewEngine(database.Carts, catalogStore)
	cartHandlers := cart.NewHandlers(cartEngine)
	orderEngine := orders.NewEngine(database.Orders, cartEngine, identity)
	orderHandlers := orders.NewHandlers(orderEngine)
	aggregator := dashboard.NewAggregator(database.Orders)
	authService := auth.NewService(identity, database.UserProfiles)
	profileService := profile.NewService(identity, database.UserProfiles)

	routes.AddAuthRoutes(router, rateLimiter, authService)
	routes.AddProfileRoutes(router, profileService)
	routes.AddMenuRoutes(router, catalogStore)
	routes.AddCartRoutes(router, cartHandlers)
	routes.AddOrderRoutes(router, orderHandlers, aggregator)

	return router
}

func main() {
	runSeed := flag.Bool("seed", false, "seed users, categories and menu items, then exit")
	flag.Parse()

	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := config.Load()

	database, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	identity, err := db.ConnectIdentity(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("Failed to connect to identity store: %v", err)
	}

	if err := rdx.Connect(cfg.RedisAddr, cfg.RedisPass); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	if *runSeed {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if err := seed.Run(ctx, identity, database); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Seeding completed")
		return
	}

	router := setupRouter(identity, database)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Close(ctx); err != nil {
			log.Printf("MongoDB disconnect error: %v", err)
		}
		identity.Close()
		rdx.Conn.Close()
	})

	go func() {
		log.Printf("Server listening on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
