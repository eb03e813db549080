package reports

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service  *Service
	Exporter Exporter
}

func NewHandler(service *Service, exporter Exporter) *Handler {
	return &Handler{Service: service, Exporter: exporter}
}

// ============================
// 📊 Parish Analytics
// GET /analytics/parishes/:name
func (h *Handler) GetParishAnalytics(c *gin.Context) {
	analytics, err := h.Service.ParishAnalytics(c.Request.Context(), c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, ErrParishNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parish not found"})
		case errors.Is(err, ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parish name is required"})
		default:
			log.Printf("❌ Error building parish analytics: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build analytics"})
		}
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// ============================
// 📊 Parish Impact Export
// GET /analytics/parishes/export?format=csv|excel|pdf
func (h *Handler) ExportParishSummaries(c *gin.Context) {
	format := c.DefaultQuery("format", FormatCSV)

	rows, err := h.Service.ParishSummaries(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error building parish summaries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	data, filename, contentType, err := h.Exporter.ExportParishSummaries(format, rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
