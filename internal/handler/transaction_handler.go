package handler

import (
	"net/http"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	transactionSvc *service.TransactionService
	rdb            *redis.Client
}

func NewTransactionHandler(transactionSvc *service.TransactionService, rdb *redis.Client) *TransactionHandler {
	return &TransactionHandler{transactionSvc: transactionSvc, rdb: rdb}
}

type createTransactionRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	CategoryID uint            `json:"category_id" binding:"required"`
	Kind       string          `json:"kind" binding:"required,oneof=income expense"`
	Note       *string         `json:"note"`
	OccurredAt *string         `json:"occurred_at"`
}

// invalidate drops the cached reads the mutation just made stale.
func (h *TransactionHandler) invalidate(c *gin.Context, userID uint) {
	err := cache.Delete(c.Request.Context(), h.rdb,
		cache.TransactionsKey(userID),
		cache.SummaryKey(userID),
	)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("cache invalidation failed")
	}
}

func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var cached []models.Transaction
	if found, err := cache.Get(c.Request.Context(), h.rdb, cache.TransactionsKey(userID), &cached); err == nil && found {
		c.JSON(http.StatusOK, gin.H{"success": true, "transactions": cached, "cached": true})
		return
	}

	ts, err := h.transactionSvc.List(userID)
	if err != nil {
		fail(c, err)
		return
	}
	_ = cache.Set(c.Request.Context(), h.rdb, cache.TransactionsKey(userID), ts, cache.DefaultTTL)
	c.JSON(http.StatusOK, gin.H{"success": true, "transactions": ts})
}

func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := parseID(c)
	if err != nil {
		fail(c, err)
		return
	}
	t, err := h.transactionSvc.Get(userID, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "transaction": t})
}

func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err)
		return
	}

	in := service.CreateTransactionInput{
		Amount:     req.Amount,
		CategoryID: req.CategoryID,
		Kind:       models.TransactionKind(req.Kind),
		Note:       req.Note,
	}
	if req.OccurredAt != nil {
		occurred, err := parseDate(*req.OccurredAt)
		if err != nil {
			invalid(c, err)
			return
		}
		in.OccurredAt = &occurred
	}

	t, err := h.transactionSvc.Create(userID, in)
	if err != nil {
		fail(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": t.ID,
		"kind":           t.Kind,
		"amount":         t.Amount.String(),
		"timestamp":      time.Now().Format(time.RFC3339),
	}).Info("transaction created")
	h.invalidate(c, userID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "transaction": t, "message": "transaction created"})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := parseID(c)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.transactionSvc.Delete(userID, id); err != nil {
		fail(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": id,
	}).Info("transaction deleted")
	h.invalidate(c, userID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "transaction deleted successfully"})
}
