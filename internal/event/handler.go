package event

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// ============================
// 📄 List Events
// GET /events?parish_id=&status=&skill=&skip=&limit=
func (h *Handler) ListEvents(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	f := ListFilter{
		Status: c.Query("status"),
		Skill:  strings.ToLower(c.Query("skill")),
		Skip:   skip,
		Limit:  limit,
	}
	if pid := c.Query("parish_id"); pid != "" {
		id, err := strconv.ParseUint(pid, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parish_id"})
			return
		}
		f.ParishID = uint(id)
	}

	from, to, err := ParseDateRange(c.Query("from_date"), c.Query("to_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f.FromDate = from
	f.ToDate = to

	resp, err := h.Service.ListEvents(c.Request.Context(), f)
	if err != nil {
		log.Printf("❌ Error listing events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ============================
// 🔍 Get Single Event
// GET /events/:id
func (h *Handler) GetEventByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	ev, err := h.Service.GetEventByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Printf("❌ Error fetching event %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":           ev,
		"spots_available": ev.SpotsAvailable(),
	})
}

// ============================
// 🔍 Search Volunteer Opportunities
// GET /events/search?location=&skills=cooking,driving&start_date=&end_date=&limit=
func (h *Handler) SearchOpportunities(c *gin.Context) {
	start, end, err := ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var skills []string
	if raw := c.Query("skills"); raw != "" {
		skills = strings.Split(raw, ",")
	}

	opps := h.Service.SearchOpportunities(c.Request.Context(), SearchFilter{
		Location:  c.Query("location"),
		Skills:    skills,
		StartDate: start,
		EndDate:   end,
		Limit:     limit,
	})

	c.JSON(http.StatusOK, gin.H{
		"count":         len(opps),
		"opportunities": opps,
	})
}

// ============================
// 🔍 Search Events By Title
// GET /events/search/:title?limit=
func (h *Handler) SearchEventsByTitle(c *gin.Context) {
	title := strings.TrimSpace(c.Param("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search title is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	events, err := h.Service.SearchByTitle(c.Request.Context(), title, limit)
	if err != nil {
		log.Printf("❌ Error searching events by title: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"query":  title,
		"count":  len(events),
		"events": events,
	})
}

// ============================
// 📄 List Distinct Skills
// GET /events/skills
func (h *Handler) GetSkills(c *gin.Context) {
	skills, err := h.Service.ListSkills(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error listing skills: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skills"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// ============================
// 📄 Upcoming Events For a Parish
// GET /parishes/:id/events?limit=
func (h *Handler) GetParishEvents(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parish ID"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	events, err := h.Service.ListUpcomingByParish(c.Request.Context(), uint(id), limit)
	if err != nil {
		log.Printf("❌ Error listing parish events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"parish_id": id,
		"count":     len(events),
		"events":    events,
	})
}
