package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"shoply_back_end/internal/apperr"
	"shoply_back_end/internal/service"
)

const requestTimeout = 10 * time.Second

// Handler regroupe les services injectés au démarrage.
type Handler struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Cart    *service.CartService
}

func New(auth *service.AuthService, catalog *service.CatalogService, cart *service.CartService) *Handler {
	return &Handler{Auth: auth, Catalog: catalog, Cart: cart}
}

// reqContext borne chaque requête à un délai unique pour toutes ses
// opérations de données.
func reqContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// fail mappe l'erreur vers le JSON {message} ; les erreurs internes sont
// loggées avec l'id de requête, jamais exposées.
func fail(c *gin.Context, err error) {
	if !apperr.IsClient(err) {
		log.Printf("❌ [%s] %s %s: %v", c.GetString("request_id"), c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(apperr.Status(err), gin.H{"message": apperr.Message(err)})
}
