package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql (migrations)
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/planflow/plan-engine/pkg/config"
	"github.com/planflow/plan-engine/pkg/database"
	"github.com/planflow/plan-engine/pkg/graph"
	"github.com/planflow/plan-engine/pkg/handlers"
	"github.com/planflow/plan-engine/pkg/middleware"
	"github.com/planflow/plan-engine/pkg/repositories"
	"github.com/planflow/plan-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.URL,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := runMigrations(cfg, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	svcs := graph.Services{
		Agents: services.NewAgentService(db,
			repositories.NewAgentRepository(),
			repositories.NewRelationshipRepository(),
			logger),
		Plans: services.NewPlanService(db,
			repositories.NewPlanRepository(),
			repositories.NewProcessRepository(),
			logger),
		Processes: services.NewProcessService(db,
			repositories.NewProcessRepository(),
			logger),
		Commitments: services.NewCommitmentService(db,
			repositories.NewCommitmentRepository(),
			repositories.NewActionRepository(),
			repositories.NewUnitRepository(),
			repositories.NewResourceSpecificationRepository(),
			repositories.NewAgentRepository(),
			logger),
		Labels: services.NewLabelService(db,
			repositories.NewLabelRepository(),
			logger),
		ResourceSpecifications: services.NewResourceSpecificationService(db,
			repositories.NewResourceSpecificationRepository(),
			logger),
		Reference: services.NewReferenceService(db,
			repositories.NewActionRepository(),
			repositories.NewUnitRepository()),
	}

	schema, err := graph.New(svcs)
	if err != nil {
		logger.Fatal("Failed to build schema", zap.Error(err))
	}

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewGraphQLHandler(schema).RegisterRoutes(mux)
	mux.Handle("/", handlers.NotFound())

	handler := middleware.RequestID()(mux)
	handler = middleware.RequestLogger(logger)(handler)
	handler = cors.Default().Handler(handler)

	logger.Info("Starting plan-engine",
		zap.String("addr", cfg.ListenAddr()),
		zap.String("version", cfg.Version),
		zap.String("env", cfg.Env))
	if err := http.ListenAndServe(cfg.ListenAddr(), handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runMigrations opens a short-lived database/sql connection, which is what
// golang-migrate drives, applies pending migrations, and closes it.
func runMigrations(cfg *config.Config, logger *zap.Logger) error {
	sqlDB, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return database.RunMigrations(sqlDB, cfg.MigrationsPath, logger)
}
