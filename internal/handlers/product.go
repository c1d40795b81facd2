package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoply_back_end/internal/models"
)

// ================== CATALOGUE ==================

// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	ctx, cancel := reqContext(c)
	defer cancel()

	products, err := h.Catalog.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Products found successfully",
		"products": products,
	})
}

// POST /add-product (token requis, produit attribué à l'utilisateur du token)
func (h *Handler) CreateProduct(c *gin.Context) {
	var fields models.ProductFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Field is missing"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	product, err := h.Catalog.Create(ctx, c.GetString("email"), fields)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// GET /product/:id (token requis)
func (h *Handler) GetProduct(c *gin.Context) {
	ctx, cancel := reqContext(c)
	defer cancel()

	product, err := h.Catalog.Get(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Product found successfully",
		"product": product,
	})
}

// PATCH /product/edit/:id (token requis ; remplacement complet des champs,
// sans vérification que l'utilisateur du token possède le produit)
func (h *Handler) UpdateProduct(c *gin.Context) {
	var input struct {
		ProductData models.ProductFields `json:"productData"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Field is missing"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	product, err := h.Catalog.Update(ctx, c.Param("id"), input.ProductData)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DELETE /product/delete/:id (aucun token exigé sur cette route)
func (h *Handler) DeleteProduct(c *gin.Context) {
	ctx, cancel := reqContext(c)
	defer cancel()

	product, err := h.Catalog.Delete(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
		"product": product,
	})
}
