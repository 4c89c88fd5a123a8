package handler

import (
	"net/http"

	"fintrack/internal/cache"
	"fintrack/internal/middleware"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type DashboardHandler struct {
	dashboardSvc *service.DashboardService
	rdb          *redis.Client
}

func NewDashboardHandler(dashboardSvc *service.DashboardService, rdb *redis.Client) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, rdb: rdb}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	rng, err := parseRange(c)
	if err != nil {
		fail(c, err)
		return
	}

	// Only the all-time summary is cached; range-filtered queries have
	// too many key shapes to invalidate reliably.
	if rng == nil {
		var cached service.Summary
		if found, err := cache.Get(c.Request.Context(), h.rdb, cache.SummaryKey(userID), &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"success": true, "summary": cached, "cached": true})
			return
		}
	}

	summary, err := h.dashboardSvc.Summary(userID, rng)
	if err != nil {
		fail(c, err)
		return
	}
	if rng == nil {
		_ = cache.Set(c.Request.Context(), h.rdb, cache.SummaryKey(userID), summary, cache.DefaultTTL)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary})
}

func (h *DashboardHandler) Charts(c *gin.Context) {
	userID := middleware.GetUserID(c)
	rng, err := parseRange(c)
	if err != nil {
		fail(c, err)
		return
	}
	charts, err := h.dashboardSvc.Charts(userID, rng)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "charts": charts})
}

func (h *DashboardHandler) TopCategories(c *gin.Context) {
	userID := middleware.GetUserID(c)
	rng, err := parseRange(c)
	if err != nil {
		fail(c, err)
		return
	}
	limit, err := parseLimit(c)
	if err != nil {
		fail(c, err)
		return
	}
	top, err := h.dashboardSvc.TopCategories(userID, rng, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "top_categories": top})
}

func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, err := parseLimit(c)
	if err != nil {
		fail(c, err)
		return
	}
	items, err := h.dashboardSvc.RecentActivity(userID, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "recent_activity": items})
}
