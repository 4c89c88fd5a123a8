package handler

import (
	"net/http"

	"fintrack/internal/middleware"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc *service.CategoryService
}

func NewCategoryHandler(categorySvc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc}
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cats, err := h.categorySvc.List(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": cats})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err)
		return
	}
	cat, err := h.categorySvc.Create(userID, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": cat, "message": "category created"})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := parseID(c)
	if err != nil {
		fail(c, err)
		return
	}
	cat, err := h.categorySvc.Delete(userID, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": cat, "message": "category archived"})
}
