package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ================== PANIER ==================

// 🛒 GET /cart (token requis)
func (h *Handler) GetCart(c *gin.Context) {
	ctx, cancel := reqContext(c)
	defer cancel()

	cart, err := h.Cart.Get(ctx, c.GetString("email"))
	if err != nil {
		fail(c, err)
		return
	}
	// cart vaut null tant qu'aucun ajout n'a été fait
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// 🛒 POST /cart/add (token requis)
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		Products []string `json:"products"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Field is missing"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cart, err := h.Cart.Add(ctx, c.GetString("email"), input.Products)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cart updated successfully",
		"cart":    cart,
	})
}
