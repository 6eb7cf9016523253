package handler

import (
	"net/http"

	"github.com/Eyob-T295/summit-connect/router"
	"github.com/gin-gonic/gin"
)

// NavHandler resolves location fragments and tracks which home-page sections
// have been revealed by scrolling.
type NavHandler struct {
	reveal *router.Reveal
}

func NewNavHandler() *NavHandler {
	return &NavHandler{reveal: router.NewReveal()}
}

// Navigate resolves a location fragment to a top-level view and its scroll
// side effect. Unknown fragments normalize to the home view, never an error.
func (h *NavHandler) Navigate(c *gin.Context) {
	nav := router.Resolve(c.Query("fragment"))

	c.JSON(http.StatusOK, gin.H{
		"view":     nav.View,
		"anchor":   nav.Anchor,
		"scroll":   nav.Scroll,
		"delay_ms": nav.Delay.Milliseconds(),
	})
}

type ObserveSectionsRequest struct {
	IDs []string `json:"ids"`
}

// ObserveSections registers the sections present after a render and returns
// their reveal state. Re-observing after a navigation re-render keeps
// previously revealed sections revealed.
func (h *NavHandler) ObserveSections(c *gin.Context) {
	var req ObserveSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing section ids in request body"})
		return
	}

	h.reveal.Observe(req.IDs...)

	sections := make(map[string]bool, len(req.IDs))
	for _, id := range req.IDs {
		sections[id] = h.reveal.Revealed(id)
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// RevealSection records that a section entered the viewport. Sections that
// were never observed are rejected.
func (h *NavHandler) RevealSection(c *gin.Context) {
	id := c.Param("id")

	if !h.reveal.Intersect(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not observed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "revealed": true})
}
