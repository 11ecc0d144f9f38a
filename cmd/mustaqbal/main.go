// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/cache"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/config"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/handler"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/logging"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/middleware"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/scheduler"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/session"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/theme"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/upload"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/version"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/web"
)

// crudHandlers defines the standard CRUD handler methods.
type crudHandlers struct {
	List     http.HandlerFunc
	NewForm  http.HandlerFunc
	Create   http.HandlerFunc
	EditForm http.HandlerFunc
	Update   http.HandlerFunc
	Delete   http.HandlerFunc
}

// registerCRUD registers standard CRUD routes for a resource.
// Routes: GET /, GET /new, POST /, GET /{id}, PUT /{id}, POST /{id}, DELETE /{id}
func registerCRUD(r chi.Router, base string, h crudHandlers) {
	baseID := base + handler.RouteParamID
	r.Get(base, h.List)
	r.Get(base+handler.RouteSuffixNew, h.NewForm)
	r.Post(base, h.Create)
	r.Get(baseID, h.EditForm)
	r.Put(baseID, h.Update)
	r.Post(baseID, h.Update) // HTML forms can't send PUT
	if h.Delete != nil {
		r.Delete(baseID, h.Delete)
		r.Post(baseID+"/delete", h.Delete) // HTML forms can't send DELETE either
	}
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Mustaqbal - SMK Mustaqbal website and CMS\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MUSTAQBAL_SESSION_SECRET  Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MUSTAQBAL_DB_PATH         SQLite database path (default: ./data/mustaqbal.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MUSTAQBAL_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MUSTAQBAL_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MUSTAQBAL_REDIS_URL       Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MUSTAQBAL_S3_BUCKET       S3 bucket for gallery uploads (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MUSTAQBAL_DO_SEED         Seed demo content on startup (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("mustaqbal %s (commit: %s, built: %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log table
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	eventLogHandler := logging.NewEventLogHandler(textHandler, db)
	logger = slog.New(eventLogHandler)
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	if cfg.DoSeed {
		if err := store.SeedDemo(ctx, db); err != nil {
			return fmt.Errorf("seeding demo content: %w", err)
		}
		slog.Info("demo content seeded")
	}

	// Initialize session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Initialize cache backend: Redis when configured, in-process memory
	// cache otherwise. A Redis connection failure falls back to memory so
	// the site stays up.
	defaultTTL := time.Duration(cfg.CacheTTL) * time.Second
	var backend cache.Cache
	if cfg.UseRedisCache() {
		redisCache, err := cache.NewRedisCache(cache.RedisCacheOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.CachePrefix,
			DefaultTTL: defaultTTL,
		})
		if err != nil {
			slog.Warn("redis unavailable, falling back to memory cache", "error", err)
		} else {
			backend = redisCache
			slog.Info("cache backend initialized", "backend", "redis", "url", cfg.RedisURL)
		}
	}
	if backend == nil {
		backend = cache.NewMemoryCache(cache.MemoryCacheOptions{
			MaxSize:         cfg.CacheMaxSize,
			DefaultTTL:      defaultTTL,
			CleanupInterval: time.Minute,
		})
		slog.Info("cache backend initialized", "backend", "memory", "max_size", cfg.CacheMaxSize)
	}
	cacheManager := cache.NewManager(cache.ManagerOptions{Backend: backend})
	defer func() {
		if err := cacheManager.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	// Initialize theme projector
	projector := theme.NewProjector(store.New(db), logger)

	// Initialize uploader when object storage is configured. The gallery
	// admin shows an explanatory message instead of the upload form when
	// this stays nil.
	var uploader *upload.Uploader
	if cfg.S3Enabled() {
		uploader = upload.New(cfg, upload.NewS3Client(cfg))
		slog.Info("object storage initialized", "bucket", cfg.S3Bucket, "region", cfg.S3Region)
	} else {
		slog.Info("object storage not configured, gallery uploads disabled")
	}

	// Initialize template renderer
	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates(),
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Initialize and start the scheduler (scheduled publishing, event pruning)
	sched, err := scheduler.New(db, cacheManager, logger)
	if err != nil {
		return fmt.Errorf("initializing scheduler: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager)
	adminHandler := handler.NewAdminHandler(db, renderer, cacheManager)
	settingsHandler := handler.NewSettingsHandler(db, renderer, cacheManager)
	sectionsHandler := handler.NewSectionsHandler(db, renderer, cacheManager)
	styleVarsHandler := handler.NewStyleVarsHandler(db, renderer, cacheManager)
	themesHandler := handler.NewThemesHandler(db, renderer, cacheManager, projector)
	newsHandler := handler.NewNewsHandler(db, renderer, cacheManager)
	programsHandler := handler.NewProgramsHandler(db, renderer, cacheManager)
	staffHandler := handler.NewStaffHandler(db, renderer, cacheManager)
	partnersHandler := handler.NewPartnersHandler(db, renderer, cacheManager)
	testimonialsHandler := handler.NewTestimonialsHandler(db, renderer, cacheManager)
	galleryHandler := handler.NewGalleryHandler(db, renderer, cacheManager, uploader)
	ppdbHandler := handler.NewPpdbHandler(db, renderer)
	newsletterHandler := handler.NewNewsletterHandler(db, renderer)
	usersHandler := handler.NewUsersHandler(db, renderer)
	frontendHandler := handler.NewFrontendHandler(db, renderer, cacheManager, projector)
	apiHandler := handler.NewAPIHandler(db, cacheManager)
	healthHandler := handler.NewHealthHandler(db)

	// CSRF protection, applied to every group that serves HTML forms
	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	// Rate limiters for anonymous write endpoints
	loginRateLimiter := middleware.NewRateLimiter(1, 5)
	submitRateLimiter := middleware.NewRateLimiter(0.5, 3)

	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)

	// Health check routes
	r.Get("/health", healthHandler.Health)
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	// Projected theme stylesheet
	r.Get("/theme.css", frontendHandler.ThemeCSS)

	// Favicon comes from the active theme's branding
	r.Get("/favicon.ico", func(w http.ResponseWriter, req *http.Request) {
		if b := projector.Branding(req.Context()); b.FaviconURL != "" {
			http.Redirect(w, req, b.FaviconURL, http.StatusFound)
			return
		}
		http.NotFound(w, req)
	})

	// Public frontend routes
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)

		r.Get(handler.RouteRoot, frontendHandler.Home)
		r.Get("/tentang-kami", frontendHandler.About)
		r.Get("/program", frontendHandler.Programs)
		r.Get("/berita", frontendHandler.NewsList)
		r.Get("/berita"+handler.RouteParamSlug, frontendHandler.NewsDetail)
		r.Get("/galeri", frontendHandler.Gallery)
		r.Get("/kontak", frontendHandler.Contact)

		r.Get("/ppdb", ppdbHandler.Form)
		r.With(submitRateLimiter.Middleware).Post("/ppdb", ppdbHandler.Submit)
		r.With(submitRateLimiter.Middleware).Post("/newsletter", newsletterHandler.Subscribe)
	})

	// Auth routes
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.With(loginRateLimiter.Middleware).Post(handler.RouteLogin, authHandler.Login)
		r.Get(handler.RouteLogout, authHandler.Logout)
		r.Post(handler.RouteLogout, authHandler.Logout)
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.Auth(sessionManager))
		r.Use(middleware.LoadUser(sessionManager, db))

		// Editor routes (editor + admin)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireEditor())

			r.Get(handler.RouteRoot, adminHandler.Dashboard)
			r.Get("/events", adminHandler.Events)

			// Page settings documents
			r.Get("/settings", settingsHandler.Index)
			r.Get("/settings/{page}", settingsHandler.EditForm)
			r.Put("/settings/{page}", settingsHandler.Update)
			r.Post("/settings/{page}", settingsHandler.Update) // HTML forms can't send PUT
			r.Post("/settings/{page}/raw", settingsHandler.UpdateRaw)

			// Page builder sections
			registerCRUD(r, "/sections", crudHandlers{
				List: sectionsHandler.List, NewForm: sectionsHandler.NewForm, Create: sectionsHandler.Create,
				EditForm: sectionsHandler.EditForm, Update: sectionsHandler.Update, Delete: sectionsHandler.Delete,
			})

			// Style variables
			r.Get("/style-variables", styleVarsHandler.List)
			r.Post("/style-variables", styleVarsHandler.Upsert)
			r.Post("/style-variables"+handler.RouteParamID+"/delete", styleVarsHandler.Delete)
			r.Delete("/style-variables"+handler.RouteParamID, styleVarsHandler.Delete)

			// Themes
			registerCRUD(r, "/themes", crudHandlers{
				List: themesHandler.List, NewForm: themesHandler.NewForm, Create: themesHandler.Create,
				EditForm: themesHandler.EditForm, Update: themesHandler.Update,
			})
			r.Post("/themes/{id}/activate", themesHandler.Activate)

			// Content management
			registerCRUD(r, "/news", crudHandlers{
				List: newsHandler.List, NewForm: newsHandler.NewForm, Create: newsHandler.Create,
				EditForm: newsHandler.EditForm, Update: newsHandler.Update, Delete: newsHandler.Delete,
			})
			registerCRUD(r, "/programs", crudHandlers{
				List: programsHandler.List, NewForm: programsHandler.NewForm, Create: programsHandler.Create,
				EditForm: programsHandler.EditForm, Update: programsHandler.Update, Delete: programsHandler.Delete,
			})
			registerCRUD(r, "/staff", crudHandlers{
				List: staffHandler.List, NewForm: staffHandler.NewForm, Create: staffHandler.Create,
				EditForm: staffHandler.EditForm, Update: staffHandler.Update, Delete: staffHandler.Delete,
			})
			registerCRUD(r, "/partners", crudHandlers{
				List: partnersHandler.List, NewForm: partnersHandler.NewForm, Create: partnersHandler.Create,
				EditForm: partnersHandler.EditForm, Update: partnersHandler.Update, Delete: partnersHandler.Delete,
			})
			registerCRUD(r, "/testimonials", crudHandlers{
				List: testimonialsHandler.List, NewForm: testimonialsHandler.NewForm, Create: testimonialsHandler.Create,
				EditForm: testimonialsHandler.EditForm, Update: testimonialsHandler.Update, Delete: testimonialsHandler.Delete,
			})

			// Gallery
			r.Get("/gallery", galleryHandler.List)
			r.Post("/gallery", galleryHandler.Upload)
			r.Put("/gallery"+handler.RouteParamID, galleryHandler.Update)
			r.Post("/gallery"+handler.RouteParamID, galleryHandler.Update)
			r.Delete("/gallery"+handler.RouteParamID, galleryHandler.Delete)
			r.Post("/gallery"+handler.RouteParamID+"/delete", galleryHandler.Delete)

			// PPDB submissions
			r.Get("/ppdb", ppdbHandler.List)
			r.Get("/ppdb/export.csv", ppdbHandler.ExportCSV)
			r.Get("/ppdb"+handler.RouteParamID, ppdbHandler.Detail)
			r.Post("/ppdb"+handler.RouteParamID+"/status", ppdbHandler.UpdateStatus)
			r.Delete("/ppdb"+handler.RouteParamID, ppdbHandler.Delete)
			r.Post("/ppdb"+handler.RouteParamID+"/delete", ppdbHandler.Delete)

			// Newsletter subscribers
			r.Get("/newsletter", newsletterHandler.List)
			r.Delete("/newsletter"+handler.RouteParamID, newsletterHandler.Delete)
			r.Post("/newsletter"+handler.RouteParamID+"/delete", newsletterHandler.Delete)
		})

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin())

			registerCRUD(r, "/users", crudHandlers{
				List: usersHandler.List, NewForm: usersHandler.NewForm, Create: usersHandler.Create,
				EditForm: usersHandler.EditForm, Update: usersHandler.Update, Delete: usersHandler.Delete,
			})

			r.Post("/cache/clear", adminHandler.ClearCache)
		})
	})

	// REST API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		apiRateLimiter := middleware.NewRateLimiter(10, 20)
		r.Use(apiRateLimiter.Middleware)

		// Public read endpoints
		r.Get("/settings/{page}", apiHandler.GetSettings)
		r.Get("/partners", apiHandler.ListPartners)
		r.Get("/news", apiHandler.ListNews)

		// Write endpoints require an editor session; callers send the CSRF
		// token in the request header.
		r.Group(func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager, db))
			r.Use(middleware.RequireEditor())
			r.Put("/settings/{page}", apiHandler.PutSettings)
		})
	})
	slog.Info("REST API v1 mounted at /api/v1")

	// Static assets: cache for 1 day
	staticHandler := middleware.StaticCache(86400)(http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))
	r.Handle("/static/*", staticHandler)

	// Locally stored uploads (used when object storage is not configured)
	uploadsHandler := middleware.StaticCache(604800)(http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	r.Handle("/uploads/*", uploadsHandler)

	// 404 handler renders the public not-found page
	r.NotFound(frontendHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
