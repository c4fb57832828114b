package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/funding-radar/app/database"
	"github.com/lysyi3m/funding-radar/app/feed"
	"github.com/lysyi3m/funding-radar/app/funding"
)

func NewHandler(configCache *feed.ConfigCache, newsRepo database.NewsRepository, version string) *Handler {
	return &Handler{
		newsRepo:    newsRepo,
		configCache: configCache,
		version:     version,
		now:         time.Now,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   funding.FormatTimestamp(h.now()),
	})
}

// GetNews lists stored funding news, newest first. Items without a publication
// date are always included.
func (h *Handler) GetNews(c *gin.Context) {
	var query newsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	filter := database.NewsFilter{
		Source: query.Source,
		Limit:  query.Limit,
	}
	if query.SinceDays > 0 {
		filter.Since = h.now().UTC().AddDate(0, 0, -query.SinceDays)
	}

	items, err := h.newsRepo.ListNews(c.Request.Context(), filter)
	if err != nil {
		slog.Error("Database error", "operation", "list_news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.newsRepo.CountNews(ctx)
	if err != nil {
		slog.Error("Database error", "operation", "count_news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	bySource, err := h.newsRepo.CountBySource(ctx)
	if err != nil {
		slog.Error("Database error", "operation", "count_by_source", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"news": gin.H{
			"total":     total,
			"by_source": bySource,
		},
		"loaded_configurations": h.configCache.GetConfigCount(),
	})
}

func (h *Handler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "Funding Radar",
		"version":     h.version,
		"description": "Funding news collected from startup RSS/Atom feeds",
		"endpoints": map[string]string{
			"health": "/health",
			"news":   "/news?source=<name>&since_days=90&limit=50",
			"stats":  "/stats",
		},
	})
}
