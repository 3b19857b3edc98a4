package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"crud_api/internal/domain"
	"crud_api/internal/http/dto"
	"crud_api/internal/model"
	"crud_api/internal/service/crud"
)

// ResourceHandler maps the five REST routes of one resource onto its service.
type ResourceHandler[T any] struct {
	svc      *crud.Service[T]
	newPatch func() model.Patch[T]
}

func NewResourceHandler[T any](svc *crud.Service[T], newPatch func() model.Patch[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{svc: svc, newPatch: newPatch}
}

// Register mounts the routes under /<resource path> of rg.
func (h *ResourceHandler[T]) Register(rg gin.IRouter) {
	group := rg.Group("/" + h.svc.Resource().Path)
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var input T
	if !h.bind(c, &input) {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ResourceHandler[T]) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *ResourceHandler[T]) Get(c *gin.Context) {
	record, ok, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	if !ok {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ResourceHandler[T]) Update(c *gin.Context) {
	patch := h.newPatch()
	if !h.bind(c, patch) {
		return
	}
	updated, ok, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	if !ok {
		h.notFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	removed, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "delete", err)
		return
	}
	if !removed {
		h.notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// bind decodes the JSON body into dst. An empty body counts as {}.
func (h *ResourceHandler[T]) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid json"})
		return false
	}
	return true
}

func (h *ResourceHandler[T]) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: h.svc.Resource().NotFoundMessage()})
}

func (h *ResourceHandler[T]) fail(c *gin.Context, op string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Error()})
		return
	}
	// Recorded on the context so the request logger reports it.
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to " + op + " " + h.svc.Resource().Path})
}
