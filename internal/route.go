package internal

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/meloniq-lab/glotline/internal/handler"
	"github.com/meloniq-lab/glotline/internal/middleware"
)

const apiPrefix = "/api/v1"

type Backend struct {
	R *gin.Engine
}

// Register builds the gin engine: ops endpoints, then the public reads
// behind optional auth, the writes behind required auth, and the admin
// group on top of that.
func Register(conf *handler.RegisterConfig) *Backend {
	s := new(Backend)
	s.R = gin.Default()
	s.R.Use(middleware.Metrics())

	s.R.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	s.R.GET("/metrics", middleware.MetricsHandler())

	s.registerService(conf)

	return s
}

func (b *Backend) registerService(conf *handler.RegisterConfig) {
	// Enable CORS for http://localhost:XXXX in debug mode
	if gin.Mode() == gin.DebugMode {
		fe := os.Getenv("GLOTLINE_FE_PORT")
		if fe != "" {
			url := "http://localhost:" + fe
			corsConf := cors.DefaultConfig()
			corsConf.AllowOrigins = []string{url}
			corsConf.AllowHeaders = append(corsConf.AllowHeaders, "Authorization")
			b.R.Use(cors.New(corsConf))
		}
	}

	managers := registerManagers(conf)

	// Public reads still run the optional auth middleware so the
	// permission gate sees the caller's identity when a token is present.
	publicRouter := b.R.Group(apiPrefix)
	publicRouter.Use(middleware.AuthOptional(conf.TokenMgr))

	protectedRouter := b.R.Group(apiPrefix)
	protectedRouter.Use(middleware.AuthProtected(conf.TokenMgr))

	adminRouter := b.R.Group(apiPrefix + "/admin")
	adminRouter.Use(middleware.AuthProtected(conf.TokenMgr), middleware.AdminOnly())

	for _, mgr := range managers {
		mgr.RegisterPublic(publicRouter)
		mgr.RegisterProtected(protectedRouter)
		mgr.RegisterAdmin(adminRouter)
	}
}
