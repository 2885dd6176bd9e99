package main

import (
	"context"
	"fmt"
	"log"

	_ "ecommerce_dashboard/docs"
	"ecommerce_dashboard/internal/adapter/http/routes"
	"ecommerce_dashboard/internal/adapter/persistence/repository"
	"ecommerce_dashboard/internal/infrastructure/config"
	"ecommerce_dashboard/internal/infrastructure/database"
	"ecommerce_dashboard/internal/infrastructure/logger"
	"ecommerce_dashboard/internal/usecase"
	"ecommerce_dashboard/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// @title           E-commerce Dashboard API
// @version         1.0
// @description     Read-only sales analytics over the marketplace order-line dataset.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	ctx := context.Background()

	repo, err := newOrderLineRepository(ctx, cfg, appLog)
	if err != nil {
		appLog.Fatal("order line source unavailable", "source", cfg.Dataset.Source, "err", err)
	}

	dataset, err := usecase.LoadDataset(ctx, repo)
	if err != nil {
		appLog.Fatal("failed to load dataset", "source", cfg.Dataset.Source, "err", err)
	}
	appLog.Info("dataset loaded", "rows", len(dataset.Lines), "span", dataset.Span.String())

	dashboard := usecase.NewDashboardUseCase(dataset, appLog)
	if err := routes.Run(cfg, appLog, dashboard); err != nil {
		appLog.Fatal("server stopped", "err", err)
	}
}

func newOrderLineRepository(ctx context.Context, cfg config.Config, log *logger.Logger) (interfaces.IOrderLineRepository, error) {
	switch cfg.Dataset.Source {
	case config.SourceCSV:
		return repository.NewOrderLineCSVRepository(cfg.Dataset.Path, log), nil
	case config.SourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, log)
		if err != nil {
			return nil, err
		}
		return repository.NewOrderLineDynamoRepository(ddb, cfg.Dataset.Table, log), nil
	default:
		return nil, fmt.Errorf("%w: unknown dataset source %q", config.ErrInvalidConfig, cfg.Dataset.Source)
	}
}
