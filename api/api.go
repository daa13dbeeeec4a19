package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/opentribunal/casework-backend/usecases"
	"github.com/opentribunal/casework-backend/utils"
)

type Configuration struct {
	Env  string
	Port string
}

func corsOption(env string) cors.Config {
	allowedOrigins := []string{"*"}

	if env == "development" {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://localhost:3001")
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func InitRouter(conf Configuration, uc usecases.Usecases, logger *slog.Logger) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsOption(conf.Env)))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	r.GET("/liveness", handleLivenessProbe)

	authed := r.Group("/", authentication(uc.Repositories.UserInfoRepository))
	authed.POST("/caseworker/manage-case-role", handleModifyCaseUserRoles(uc))
	authed.GET("/cases/:case_id", handleGetCase(uc))
	authed.POST("/cases/search", handleSearchCases(uc))
	authed.PUT("/cases/:case_id/applications", handleStoreApplication(uc))
	authed.PUT("/cases/:case_id/applications/submit", handleSubmitStoredApplication(uc))
	authed.PUT("/cases/:case_id/applications/:application_id/respond", handleRespondToApplication(uc))
	authed.PUT("/cases/:case_id/applications/:application_id/view", handleViewApplication(uc))
	authed.PUT("/cases/:case_id/applications/:application_id/responses/store", handleStoreResponse(uc))
	authed.PUT("/cases/:case_id/applications/:application_id/responses/submit", handleSubmitStoredResponse(uc))
	authed.PUT("/cases/:case_id/notifications/:notification_id/view", handleViewNotification(uc))

	return r
}

func NewServer(conf Configuration, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}
}

func handleLivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
