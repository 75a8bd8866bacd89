package api

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Config holds application configuration
type Config struct {
	Port          string `validate:"required"`
	MaxFileSize   int64  `validate:"min=1"`
	MaxMergeFiles int    `validate:"min=2"`
}

// Validate checks the configuration before the server starts.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func SetupRoutes(r *gin.Engine, config *Config) {
	apiGroup := r.Group("/api/pdf")
	{
		apiGroup.POST("/info", func(c *gin.Context) { HandleInfo(c, config) })
		apiGroup.POST("/merge", func(c *gin.Context) { HandleMerge(c, config) })
		apiGroup.POST("/split", func(c *gin.Context) { HandleSplit(c, config) })
		apiGroup.POST("/extract", func(c *gin.Context) { HandleExtract(c, config) })
		apiGroup.POST("/remove-pages", func(c *gin.Context) { HandleRemovePages(c, config) })
		apiGroup.POST("/reorder", func(c *gin.Context) { HandleReorder(c, config) })
		apiGroup.POST("/compress", func(c *gin.Context) { HandleCompress(c, config) })
		apiGroup.POST("/to-images", func(c *gin.Context) { HandleToImages(c, config) })
		apiGroup.POST("/from-images", func(c *gin.Context) { HandleFromImages(c, config) })
		apiGroup.POST("/area-select", func(c *gin.Context) { HandleAreaSelect(c, config) })
	}
}
