package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/di"
	"portal-automation/internal/domain/entity"
	"portal-automation/internal/infrastructure/env"
	"portal-automation/internal/usecase/search"
)

func main() {
	envService := env.NewEnvService()

	container, err := di.NewContainer(di.ConfigFromEnv(envService, "search"))
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}

	err = run(container, envService)
	container.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(container *di.Container, envService *env.EnvService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container.Logger.Info("Starting browser automation...")
	defer container.Logger.Info("Browser automation completed.")

	query := envService.GetWithDefault("SEARCH_QUERY", search.DefaultQuery)
	defaultWait := strconv.FormatFloat(search.DefaultWait.Seconds(), 'f', -1, 64)
	wait, err := entity.ParseWaitSeconds(envService.GetWithDefault("SEARCH_WAIT_SECONDS", defaultWait))
	if err != nil {
		container.Logger.Error("Invalid SEARCH_WAIT_SECONDS", "error", err)
		return err
	}

	err = container.WithSession(ctx, func(session output.SessionPort) error {
		result, err := container.SearchExecutor(session).Execute(ctx, query, wait)
		if err != nil {
			return err
		}
		fmt.Printf("\nSearched %q: %s\n", result.Query, result.URL)
		return nil
	})
	if err != nil {
		container.Logger.Error("An error occurred during browser automation", "error", err)
	}
	return err
}
