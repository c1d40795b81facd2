package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ================== AUTH ==================

// POST /register
func (h *Handler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Field is missing"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Auth.Register(ctx, input.Name, input.Email, input.Password); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
}

// POST /login
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Field is missing"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	session, err := h.Auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"id":      session.ID.Hex(),
		"name":    session.Name,
		"token":   session.Token,
		"email":   session.Email,
		"role":    session.Role,
	})
}
