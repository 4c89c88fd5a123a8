package handler

import (
	"net/http"

	"fintrack/internal/middleware"
	"fintrack/internal/service"
	"fintrack/pkg/gemini"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	insightSvc *service.InsightService
}

func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// respond wraps a generator response: rawText carries the model output
// verbatim, data the best-effort JSON decode of the same text.
func (h *InsightHandler) respond(c *gin.Context, insightType, rawText string) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"type":     insightType,
		"raw_text": rawText,
		"data":     gemini.SafeParse(rawText),
		"message":  "insight generated successfully",
	})
}

func (h *InsightHandler) SpendingSummary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	rng, err := parseRange(c)
	if err != nil {
		fail(c, err)
		return
	}
	rawText, err := h.insightSvc.SpendingSummary(c.Request.Context(), userID, rng)
	if err != nil {
		fail(c, err)
		return
	}
	h.respond(c, "spending-summary", rawText)
}

func (h *InsightHandler) SavingRecommendations(c *gin.Context) {
	userID := middleware.GetUserID(c)
	rng, err := parseRange(c)
	if err != nil {
		fail(c, err)
		return
	}
	rawText, err := h.insightSvc.SavingRecommendations(c.Request.Context(), userID, rng)
	if err != nil {
		fail(c, err)
		return
	}
	h.respond(c, "saving-recommendations", rawText)
}

func (h *InsightHandler) Forecast(c *gin.Context) {
	userID := middleware.GetUserID(c)
	rawText, err := h.insightSvc.Forecast(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	h.respond(c, "forecast", rawText)
}
