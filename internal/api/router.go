package api

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/tuyendunghub/job-board/internal/logger"
	"github.com/tuyendunghub/job-board/internal/services"
	"github.com/tuyendunghub/job-board/pkg/jwt"
	"golang.org/x/time/rate"
)

type RouterConfig struct {
	Auth   *services.AuthService
	Jobs   *services.JobService
	Stats  *services.StatsService
	Tokens *jwt.Manager

	// CorsOrigins empty means allow all
	CorsOrigins []string

	// LoginLimiter caps login attempts; nil gets a sane default
	LoginLimiter *rate.Limiter
}

func NewRouter(cfg RouterConfig) *gin.Engine {

	registerValidatorTagNames()

	if cfg.LoginLimiter == nil {
		cfg.LoginLimiter = rate.NewLimiter(rate.Limit(5), 20)
	}

	r := gin.New()
	r.Use(recordMetrics())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
			Errorf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": msgInternalError})
	}))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CorsOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CorsOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgEndpointNotFound})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	authHandler := NewAuthHandler(cfg.Auth)
	jobHandler := NewJobHandler(cfg.Jobs)
	statsHandler := NewStatsHandler(cfg.Stats)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", loginRateLimit(cfg.LoginLimiter), authHandler.Login)
	auth.GET("/verify", requireAuth(cfg.Tokens), authHandler.Verify)

	jobs := api.Group("/jobs")
	jobs.GET("", jobHandler.PublicList)
	jobs.GET("/:id", jobHandler.PublicGet)

	admin := api.Group("/admin")
	admin.Use(requireAuth(cfg.Tokens))
	admin.GET("/jobs", jobHandler.AdminList)
	admin.POST("/jobs", jobHandler.Create)
	admin.GET("/jobs/:id", jobHandler.AdminGet)
	admin.PUT("/jobs/:id", jobHandler.Update)
	admin.DELETE("/jobs/:id", jobHandler.Delete)
	admin.PATCH("/jobs/:id/toggle", jobHandler.Toggle)
	admin.GET("/stats", statsHandler.Overview)

	return r
}

// registerValidatorTagNames makes validation errors report json field names
// instead of Go struct field names.
func registerValidatorTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
