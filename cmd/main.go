package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	userapp "github.com/muhammadheryan/user-registration/application/user"
	"github.com/muhammadheryan/user-registration/cmd/config"
	_ "github.com/muhammadheryan/user-registration/docs"
	userRepo "github.com/muhammadheryan/user-registration/repository/user"
	"github.com/muhammadheryan/user-registration/transport"
	"github.com/muhammadheryan/user-registration/utils/logger"
	"go.uber.org/zap"
)

// @title User Registration Service
// @version 1.0
// @description User registration API: validates, deduplicates and persists new users
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Create the users table (with its unique keys) on boot
	if err := userRepo.InitSchema(context.Background(), db); err != nil {
		logger.Fatal("err init schema", zap.Error(err))
	}

	// Initialize repository and application layers
	UserRepo := userRepo.NewUserRepository(db)
	UserApp := userapp.NewUserApp(UserRepo)

	httpTransport := transport.NewTransport(UserApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
