package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fixora/fixora-backend/auth"
)

type AccountService interface {
	Signup(ctx context.Context, req auth.SignupRequest) (auth.Session, error)
	Login(ctx context.Context, email, password string) (auth.Session, error)
	Resolve(ctx context.Context, token string) (auth.Principal, error)
}

type AuthHandler struct {
	service AccountService
}

func NewAuthHandler(service AccountService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.GET("/me", BearerAuth(h.service), h.Me)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	session, err := h.service.Signup(c.Request.Context(), req)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		case errors.Is(err, auth.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists with this email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
		}

		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		}

		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentPrincipal(c))
}
