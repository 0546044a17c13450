package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	origins := app.Config.GetCORSOrigins()
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, o := range origins {
			if strings.EqualFold(o, origin) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", app.Handler.Login)

		// candidate-facing interview flow
		v1.POST("/sessions", app.Handler.CreateSession)
		v1.GET("/sessions/:id", app.Handler.GetSession)
		v1.POST("/sessions/:id/confirm", app.Handler.ConfirmInfo)
		v1.PUT("/sessions/:id/buffer", app.Handler.UpdateBuffer)
		v1.POST("/sessions/:id/answers", app.Handler.SubmitAnswer)
		v1.POST("/sessions/:id/reset", app.Handler.ResetSession)
		v1.GET("/sessions/:id/transcript", app.Handler.GetTranscript)
	}

	// interviewer-facing dashboard
	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/candidates", app.Handler.ListCandidates)
		protected.GET("/candidates/:id", app.Handler.GetCandidate)
	}

	return r
}
