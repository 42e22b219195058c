package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"pharmacy-chatbot-backend/database"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ResourceStore is the CRUD surface of one collection.
type ResourceStore[T any] interface {
	List(ctx context.Context, limit, skip int64) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) error
	Update(ctx context.Context, id string, doc *T) error
	Delete(ctx context.Context, id string) error
}

// ResourceController serves the admin CRUD endpoints for one record type.
type ResourceController[T any] struct {
	name  string
	store ResourceStore[T]
}

func NewResourceController[T any](name string, store ResourceStore[T]) *ResourceController[T] {
	return &ResourceController[T]{name: name, store: store}
}

func (rc *ResourceController[T]) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	items, err := rc.store.List(c.Request.Context(), int64(limit), int64((page-1)*limit))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list "+rc.name, err)
		return
	}
	if items == nil {
		items = []T{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"page":    page,
		"limit":   limit,
	})
}

func (rc *ResourceController[T]) Get(c *gin.Context) {
	item, err := rc.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		rc.storeError(c, "Failed to get "+rc.name, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (rc *ResourceController[T]) Create(c *gin.Context) {
	var doc T
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := rc.store.Create(c.Request.Context(), &doc); err != nil {
		rc.storeError(c, "Failed to create "+rc.name, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": doc})
}

func (rc *ResourceController[T]) Update(c *gin.Context) {
	var doc T
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := rc.store.Update(c.Request.Context(), c.Param("id"), &doc); err != nil {
		rc.storeError(c, "Failed to update "+rc.name, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}

func (rc *ResourceController[T]) Delete(c *gin.Context) {
	if err := rc.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		rc.storeError(c, "Failed to delete "+rc.name, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": rc.name + " deleted"})
}

// Register mounts the CRUD routes on group.
func (rc *ResourceController[T]) Register(group *gin.RouterGroup) {
	group.GET("", rc.List)
	group.POST("", rc.Create)
	group.GET("/:id", rc.Get)
	group.PUT("/:id", rc.Update)
	group.DELETE("/:id", rc.Delete)
}

func (rc *ResourceController[T]) storeError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, database.ErrInvalidID):
		respondError(c, http.StatusBadRequest, "Invalid id", err)
	case errors.Is(err, database.ErrNotFound):
		respondError(c, http.StatusNotFound, rc.name+" not found", err)
	default:
		respondError(c, http.StatusInternalServerError, message, err)
	}
}
