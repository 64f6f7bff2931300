// Package server is the HTTP adapter over the render pipeline.
package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stillpond/calmweave/internal/config"
	"github.com/stillpond/calmweave/internal/palette"
)

// RenderFunc produces a finished video for one request and returns its path.
type RenderFunc func(theme, tone string, duration int) (string, error)

// GenerateRequest is the inbound payload. Every field is optional; missing
// values take the process defaults.
type GenerateRequest struct {
	Theme     string `json:"theme"`
	Frequency string `json:"frequency"`
	Duration  int    `json:"duration"`
}

// NewRouter constructs the Gin engine with registered routes.
func NewRouter(render RenderFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", handleHome)
	r.GET("/themes", handleCatalog)
	r.POST("/generate", handleGenerate(render))
	return r
}

func handleHome(c *gin.Context) {
	c.String(http.StatusOK, "Calmweave healing video API is running.")
}

func handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes": palette.Themes(),
		"tones":  palette.Tones(),
	})
}

func handleGenerate(render RenderFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := GenerateRequest{
			Theme:     config.DefaultTheme,
			Frequency: config.DefaultTone,
			Duration:  config.DefaultDuration,
		}
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "invalid JSON payload",
				})
				return
			}
		}

		path, err := render(req.Theme, req.Frequency, req.Duration)
		if err != nil {
			log.Printf("render failed: theme=%s frequency=%s duration=%d: %v",
				req.Theme, req.Frequency, req.Duration, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "success",
			"video_path": path,
		})
	}
}
