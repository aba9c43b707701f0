package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/server/http/dto"
)

// ContactHandler manages the public contact form and message triage.
type ContactHandler struct {
	facade ContactFacade
	dev    bool
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContactFacade, dev bool) *ContactHandler {
	return &ContactHandler{facade: facade, dev: dev}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.facade.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Phone, req.Subject, req.Message); err != nil {
		respondError(c, err, "Failed to save message", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// List handles GET /api/messages.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.facade.ContactMessages(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch messages", h.dev)
		return
	}
	response := make([]dto.ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, dto.ContactMessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Subject:   m.Subject,
			Message:   m.Message,
			Status:    string(m.Status),
			CreatedAt: m.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// SetStatus handles PATCH /api/messages/:id.
func (h *ContactHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.facade.SetMessageStatus(c.Request.Context(), id, model.MessageStatus(req.Status)); err != nil {
		respondError(c, err, "Failed to update message", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
