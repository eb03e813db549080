package parish

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 List Parishes - GET /parishes?skip=&limit=&city=&state=&service=
func (h *Handler) ListParishes(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	filter := ListFilter{
		City:    c.Query("city"),
		State:   c.Query("state"),
		Service: c.Query("service"),
		Skip:    skip,
		Limit:   limit,
	}

	resp, err := h.Service.ListParishes(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list parishes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ===========================
// 🔍 Get Parish - GET /parishes/:id
func (h *Handler) GetParishByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parish ID"})
		return
	}

	p, err := h.Service.GetParishByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrParishNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "parish not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// ===========================
// 🔍 Search Parishes by Name - GET /parishes/search/:name
func (h *Handler) SearchParishes(c *gin.Context) {
	name := c.Param("name")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	parishes, err := h.Service.SearchByName(c.Request.Context(), name, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search parishes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    name,
		"count":    len(parishes),
		"parishes": parishes,
	})
}

// ===========================
// 🗺 Parishes by State - GET /parishes/by-state/:state
func (h *Handler) GetParishesByState(c *gin.Context) {
	state := strings.ToUpper(c.Param("state"))

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}

	resp, err := h.Service.ListParishes(c.Request.Context(), ListFilter{
		State: state,
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list parishes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    state,
		"total":    resp.Total,
		"skip":     resp.Skip,
		"limit":    resp.Limit,
		"parishes": resp.Parishes,
	})
}

// ===========================
// 🗺 Distinct States - GET /states
func (h *Handler) GetStates(c *gin.Context) {
	states, err := h.Service.ListStates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list states"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"states": states})
}
