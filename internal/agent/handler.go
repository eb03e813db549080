package agent

import (
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CatholicOS/caritas-ai/internal/event"
)

type Handler struct {
	Service *Service
	Events  OpportunitySearcher
}

func NewHandler(service *Service, events OpportunitySearcher) *Handler {
	return &Handler{Service: service, Events: events}
}

type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string              `json:"response"`
	SessionID string              `json:"session_id"`
	Events    []event.Opportunity `json:"events,omitempty"`
	Location  map[string]string   `json:"location,omitempty"`
}

// locationPatterns catch "in Brooklyn", "near Baltimore" and similar
// phrasings so the frontend can center its map without a second LLM call.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bin\s+([A-Z][a-zA-Z ]+?)(?:\s*[,.!?]|$)`),
	regexp.MustCompile(`\bnear\s+([A-Z][a-zA-Z ]+?)(?:\s*[,.!?]|$)`),
	regexp.MustCompile(`\bat\s+([A-Z][a-zA-Z ]+?)(?:\s*[,.!?]|$)`),
	regexp.MustCompile(`\baround\s+([A-Z][a-zA-Z ]+?)(?:\s*[,.!?]|$)`),
}

func extractLocation(message string) map[string]string {
	for _, p := range locationPatterns {
		if m := p.FindStringSubmatch(message); m != nil {
			city := strings.TrimSpace(m[1])
			city = strings.TrimSuffix(city, " area")
			city = strings.TrimSuffix(city, " city")
			return map[string]string{"city": city, "state": ""}
		}
	}
	return nil
}

// ============================
// 💬 Chat
// POST /chat
func (h *Handler) Chat(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat agent is not available"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply := h.Service.Chat(c.Request.Context(), sessionID, req.Message)

	resp := chatResponse{
		Response:  reply,
		SessionID: sessionID,
		Location:  extractLocation(req.Message),
	}

	// When the reply mentions opportunities, attach structured events
	// for the caller's map view.
	if resp.Location != nil {
		lower := strings.ToLower(reply)
		if strings.Contains(lower, "found") || strings.Contains(lower, "opportunit") ||
			strings.Contains(lower, "event") || strings.Contains(lower, "volunteer") {
			resp.Events = h.Events.SearchOpportunities(c.Request.Context(), event.SearchFilter{
				Location: resp.Location["city"],
				Limit:    20,
			})
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ============================
// 💬 Reset Conversation
// POST /chat/reset
func (h *Handler) Reset(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat agent is not available"})
		return
	}

	var body struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	if err := h.Service.Reset(c.Request.Context(), body.SessionID); err != nil {
		log.Printf("❌ Error resetting conversation %s: %v", body.SessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Conversation reset successfully",
		"session_id": body.SessionID,
	})
}

// ============================
// 💬 Conversation History
// GET /chat/history?session_id=
func (h *Handler) History(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat agent is not available"})
		return
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	history, err := h.Service.History(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("❌ Error loading history for %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	messages := make([]gin.H, 0, len(history))
	for _, m := range history {
		messages = append(messages, gin.H{
			"role":    string(m.Role),
			"content": m.Content,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id":    sessionID,
		"message_count": len(messages),
		"messages":      messages,
	})
}
