package handlers

import (
	"net/http"

	"carelink/middleware"
	"carelink/models"
	"carelink/services/audit"
	"carelink/services/messaging"

	"github.com/gin-gonic/gin"
)

// MessagingHandler runs outgoing messages through the content guard before
// the messaging collaborator stores or delivers them.
type MessagingHandler struct {
	Guard messaging.Guard
	Audit audit.Recorder
}

func NewMessagingHandler(guard messaging.Guard, auditRec audit.Recorder) *MessagingHandler {
	return &MessagingHandler{Guard: guard, Audit: auditRec}
}

// FilterMessage handles POST /api/messages/filter. A blocked message is a
// successful response, not an error; the attempt is still logged.
func (h *MessagingHandler) FilterMessage(c *gin.Context) {
	actorID := c.GetString(middleware.CtxActorID)
	actorRole := c.GetString(middleware.CtxActorRole)

	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	result := h.Guard.FilterMessage(input.Content, actorRole)
	if result.Blocked && h.Audit != nil {
		h.Audit.Record(c.Request.Context(), actorID, models.AuditMessageBlocked, "", map[string]string{
			"reason": result.BlockReason,
		})
	}

	c.JSON(http.StatusOK, result)
}
