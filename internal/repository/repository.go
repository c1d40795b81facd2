package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/models"
)

// Les consommateurs définissent ces interfaces, pas l'implémentation MongoDB.

var (
	// ErrNotFound : aucun document ne correspond.
	ErrNotFound = errors.New("document not found")
	// ErrNoDatabase : la connexion a échoué au démarrage ; chaque opération
	// échoue individuellement sans arrêter le process.
	ErrNoDatabase = errors.New("db is not connected")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	SetCart(ctx context.Context, userID, cartID primitive.ObjectID) error
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, fields models.ProductFields) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type CartRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error)
	Insert(ctx context.Context, cart *models.Cart) error
	Update(ctx context.Context, id primitive.ObjectID, products []primitive.ObjectID, total float64) error
}
