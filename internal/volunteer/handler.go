package volunteer

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
// 🔍 Get Volunteer
// GET /volunteers/:id
func (h *Handler) GetVolunteerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid volunteer ID"})
		return
	}

	v, err := h.Service.GetVolunteerByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrVolunteerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
			return
		}
		log.Printf("❌ Error fetching volunteer %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch volunteer"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// ============================
// 🔍 Lookup Volunteer By Email
// GET /volunteers/lookup?email=
func (h *Handler) LookupByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	v, err := h.Service.GetVolunteerByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, ErrVolunteerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
			return
		}
		log.Printf("❌ Error looking up volunteer %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up volunteer"})
		return
	}
	c.JSON(http.StatusOK, v)
}

// ============================
// 🔄 Update Volunteer Profile
// PUT /volunteers/:id
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid volunteer ID"})
		return
	}

	var upd ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	v, err := h.Service.UpdateProfile(c.Request.Context(), uint(id), upd)
	if err != nil {
		if errors.Is(err, ErrVolunteerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
			return
		}
		log.Printf("❌ Error updating volunteer %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update volunteer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "volunteer": v})
}
