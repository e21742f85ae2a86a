package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/di"
	"portal-automation/internal/domain/entity"
	"portal-automation/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	container, err := di.NewContainer(di.ConfigFromEnv(envService, "portal_login"))
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

	creds, err := credentials(ctx, container, envService)
	if err != nil {
		container.Logger.Error("Could not read credentials", "error", err)
		return err
	}

	err = container.WithSession(ctx, func(session output.SessionPort) error {
		uc, err := container.LoginExecutor(session)
		if err != nil {
			return err
		}
		result, err := uc.Execute(ctx, creds)
		if err != nil {
			return err
		}
		fmt.Printf("\nLogged in as %s: %s (%s)\n", creds.Login, result.URL, result.Duration.Round(time.Millisecond))
		return nil
	})
	if err != nil {
		container.Logger.Error("An error occurred during browser automation", "error", err)
		fmt.Printf("\nLogin failed: %v\n", err)
	}
	return err
}

// credentials come from PORTAL_LOGIN / PORTAL_PASSWORD or, when unset, from
// the console.
func credentials(ctx context.Context, container *di.Container, envService *env.EnvService) (entity.Credentials, error) {
	creds := entity.Credentials{
		Login:    envService.Get("PORTAL_LOGIN"),
		Password: envService.Get("PORTAL_PASSWORD"),
	}

	var err error
	if creds.Login == "" {
		if creds.Login, err = container.Console.AskQuestion(ctx, "Login:"); err != nil {
			return creds, err
		}
	}
	if creds.Password == "" {
		if creds.Password, err = container.Console.AskSecret(ctx, "Password:"); err != nil {
			return creds, err
		}
	}
	return creds, creds.Validate()
}
