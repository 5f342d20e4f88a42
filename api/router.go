// Package api serves the manifest transform over HTTP for callers that
// are not part of the state machine.
package api

import (
	"errors"
	"net/http"

	aq "github.com/juked-social/textract-mail-scanning"

	"github.com/gin-gonic/gin"
)

type PresetResponse struct {
	Name    string               `json:"name"`
	Queries []aq.QueryDefinition `json:"queries"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	registry      *aq.Registry
	defaultPreset string
}

// NewRouter wires the routes. defaultPreset is used when a request
// does not name one.
func NewRouter(registry *aq.Registry, defaultPreset string) *gin.Engine {
	h := &handler{registry: registry, defaultPreset: defaultPreset}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.GET("/health", h.health)
	r.GET("/presets", h.listPresets)
	r.GET("/presets/:name", h.getPreset)
	r.POST("/manifests", h.createManifest)
	return r
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) listPresets(c *gin.Context) {
	names := h.registry.Names()
	presets := make([]PresetResponse, 0, len(names))
	for _, name := range names {
		set, err := h.registry.Lookup(name)
		if err != nil {
			continue
		}
		presets = append(presets, presetResponse(set))
	}
	c.JSON(http.StatusOK, presets)
}

func (h *handler) getPreset(c *gin.Context) {
	set, err := h.registry.Lookup(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, presetResponse(set))
}

func (h *handler) createManifest(c *gin.Context) {
	set, err := h.registry.Lookup(c.DefaultQuery("preset", h.defaultPreset))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	var event aq.InputEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	out, err := aq.Transform(event, set)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, aq.ErrMissingField) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func presetResponse(set aq.QuerySet) PresetResponse {
	return PresetResponse{Name: set.Name(), Queries: set.Queries()}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		aq.Logger.Debug("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status())
	}
}
