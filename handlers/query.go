package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-floodlens/chat"
	"go-floodlens/mapview"
)

// QueryRequest is one user turn. Voice marks input that came from
// speech-to-text; the response echoes it as "speak" so the client reads the
// outcome message aloud only for voice turns.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
	Voice bool   `json:"voice"`
}

// HandleQuery runs one chat turn through the orchestrator.
func HandleQuery(c *gin.Context, orch *chat.Orchestrator) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := orch.HandleQuery(c.Request.Context(), req.Query, req.Voice)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrBusy):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "a query is already being processed, please wait"})
		case errors.Is(err, chat.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "query text is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           result.ID,
		"outcome":      result.Outcome,
		"message":      result.Message,
		"notification": result.Notification,
		"speak":        result.Speak,
		"clearedView":  result.ClearedView,
		"matched":      len(result.Records),
		"markers":      mapview.BuildMarkers(result.Records),
	})
}
