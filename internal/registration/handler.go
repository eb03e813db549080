package registration

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// ============================
// 🔄 Register For Event
// POST /registrations
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, ErrEventFull):
			c.JSON(http.StatusConflict, gin.H{"error": "Event is full"})
		case errors.Is(err, ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "You are already registered for this event"})
		case errors.Is(err, ErrEventNotOpen):
			c.JSON(http.StatusConflict, gin.H{"error": "Event is not open for registration"})
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrEmailRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("❌ Registration failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration confirmed",
		"registration": result,
	})
}

// ============================
// 🔄 Check In / Check Out
// POST /registrations/:id/checkin
func (h *Handler) CheckIn(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}
	reg, err := h.Service.CheckIn(c.Request.Context(), uint(id))
	if err != nil {
		h.writeError(c, err, "Check-in failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checked in", "registration": reg})
}

// POST /registrations/:id/checkout
func (h *Handler) CheckOut(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}
	reg, err := h.Service.CheckOut(c.Request.Context(), uint(id))
	if err != nil {
		h.writeError(c, err, "Check-out failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checked out", "registration": reg})
}

// ============================
// 🔄 Feedback
// POST /registrations/:id/feedback
func (h *Handler) SubmitFeedback(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}

	var body struct {
		Rating   *int   `json:"rating"`
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if body.Rating != nil && (*body.Rating < 1 || *body.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	reg, err := h.Service.SubmitFeedback(c.Request.Context(), uint(id), body.Rating, body.Feedback)
	if err != nil {
		h.writeError(c, err, "Failed to save feedback")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback saved", "registration": reg})
}

// ============================
// 📄 List Registrations
// GET /events/:id/registrations
func (h *Handler) ListByEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}
	regs, err := h.Service.ListByEvent(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("❌ Error listing registrations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": id, "count": len(regs), "registrations": regs})
}

// GET /volunteers/:id/registrations
func (h *Handler) ListByVolunteer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid volunteer ID"})
		return
	}
	regs, err := h.Service.ListByVolunteer(c.Request.Context(), uint(id))
	if err != nil {
		log.Printf("❌ Error listing registrations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"volunteer_id": id, "count": len(regs), "registrations": regs})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
	case errors.Is(err, ErrNotCheckedIn):
		c.JSON(http.StatusConflict, gin.H{"error": "Volunteer has not checked in"})
	default:
		log.Printf("❌ %s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
