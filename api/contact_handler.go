package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fixora/fixora-backend/contact"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, msg contact.Message) (contact.Message, error)
}

type ContactHandler struct {
	service ContactService
}

func NewContactHandler(service ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var msg contact.Message

	if err := c.BindJSON(&msg); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	stored, err := h.service.SubmitMessage(c.Request.Context(), msg)

	if err != nil {
		c.Error(err)
		if errors.Is(err, contact.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"contact": stored,
	})
}
