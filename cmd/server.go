package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/api"
	"github.com/opentribunal/casework-backend/models"
	"github.com/opentribunal/casework-backend/repositories"
	"github.com/opentribunal/casework-backend/usecases"
	"github.com/opentribunal/casework-backend/utils"
)

func RunServer() error {
	// This is where we read the environment variables and set up the
	// configuration for the application.
	apiConfig := api.Configuration{
		Env:  utils.GetEnv("ENV", "development"),
		Port: utils.GetRequiredEnv[string]("PORT"),
	}
	repositoryConfig := repositories.Config{
		CaseStoreURL:         utils.GetRequiredEnv[string]("CASE_STORE_URL"),
		AccessControlURL:     utils.GetRequiredEnv[string]("ACCESS_CONTROL_URL"),
		NotifyURL:            utils.GetRequiredEnv[string]("NOTIFY_URL"),
		DocRenderURL:         utils.GetRequiredEnv[string]("DOC_RENDER_URL"),
		IdentityURL:          utils.GetRequiredEnv[string]("IDENTITY_URL"),
		ServiceName:          utils.GetEnv("SERVICE_NAME", "casework-backend"),
		ServiceTokenKey:      []byte(utils.GetRequiredEnv[string]("SERVICE_TOKEN_KEY")),
		ServiceTokenLifetime: utils.GetEnv("SERVICE_TOKEN_LIFETIME", 15*time.Minute),
	}
	emailTemplates := models.EmailTemplates{
		ApplicationStored:    utils.GetEnv("TEMPLATE_APPLICATION_STORED", ""),
		ApplicationSubmitted: utils.GetEnv("TEMPLATE_APPLICATION_SUBMITTED", ""),
		ApplicationResponded: utils.GetEnv("TEMPLATE_APPLICATION_RESPONDED", ""),
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	uc := usecases.Usecases{
		Repositories:   repositories.NewRepositories(repositoryConfig, nil),
		EmailTemplates: emailTemplates,
	}

	router := api.InitRouter(apiConfig, uc, logger)
	server := api.NewServer(apiConfig, router)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", apiConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err)
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}
	return nil
}
