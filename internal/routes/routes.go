package routes

import (
	"github.com/gin-gonic/gin"

	"shoply_back_end/internal/handlers"
	"shoply_back_end/internal/middleware"
	"shoply_back_end/internal/service"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, auth *service.AuthService) {
	// Routes publiques (la suppression produit n'exige pas de token)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/products", h.ListProducts)
	r.DELETE("/product/delete/:id", h.DeleteProduct)

	// Routes protégées par le header "token"
	protected := r.Group("/")
	protected.Use(middleware.TokenRequired(auth))
	protected.POST("/add-product", h.CreateProduct)
	protected.GET("/product/:id", h.GetProduct)
	protected.PATCH("/product/edit/:id", h.UpdateProduct)
	protected.GET("/cart", h.GetCart)
	protected.POST("/cart/add", h.AddToCart)
}
