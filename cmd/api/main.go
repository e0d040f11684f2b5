package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"github.com/petermazzocco/go-video-project/internal/auth"
	"github.com/petermazzocco/go-video-project/internal/config"
	"github.com/petermazzocco/go-video-project/internal/handlers"
	"github.com/petermazzocco/go-video-project/internal/media"
	"github.com/petermazzocco/go-video-project/internal/metrics"
	"github.com/petermazzocco/go-video-project/internal/store"
	"github.com/petermazzocco/go-video-project/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Initialize environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Chi
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Session store, shared with the OAuth handshake
	sessionManager := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionMaxAge, cfg.CookieSecure)
	gothic.Store = sessionManager.Store()

	// OAUTH
	goth.UseProviders(google.New(cfg.GoogleKey, cfg.GoogleSecret, cfg.GoogleCallbackURL))

	// Database connection
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := db.AutoMigrate(models.User{}, models.Video{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Create custom HTTP client with TLS config
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			MaxVersion: tls.VersionTLS13,
			CipherSuites: []uint16{
				tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
				tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			},
		},
	}
	httpClient := &http.Client{Transport: tr}

	// S3-compatible media host
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithHTTPClient(httpClient),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("ERR CONFIG:", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
	})
	mediaHost := media.NewS3Host(client, cfg.BucketName, cfg.PublicURL)

	collector := metrics.NewCollector()
	h := handlers.New(store.NewUserStore(db), store.NewVideoStore(db), mediaHost, sessionManager, collector, logger)

	// Public routes
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	r.Get("/auth/{provider}", h.BeginOAuth)
	r.Get("/auth/{provider}/callback", h.OAuthCallback)
	r.Get("/watch/{videoID}", h.Watch)
	r.Handle("/metrics", collector.Handler())

	// Routes for authenticated users
	r.Group(func(r chi.Router) {
		r.Use(auth.UserMiddleware(sessionManager))
		r.Use(httprate.Limit(
			20,
			1*time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
		))
		r.Get("/", h.ListVideos)
		r.Post("/upload", h.Upload)
		r.Post("/delete/{videoID}", h.DeleteVideo)
	})

	log.Println("Starting API server on :" + cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, r))
}
