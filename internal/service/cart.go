package service

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/apperr"
	"shoply_back_end/internal/models"
	"shoply_back_end/internal/repository"
)

// CartService : panier unique par utilisateur, créé paresseusement au premier
// ajout. Un produit présent vaut "dans le panier", sans quantité.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, users repository.UserRepository) *CartService {
	return &CartService{carts: carts, products: products, users: users}
}

// Get renvoie le panier de l'utilisateur avec les produits résolus, ou nil si
// aucun panier n'existe encore.
func (s *CartService) Get(ctx context.Context, email string) (*models.PopulatedCart, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		return nil, nil
	}

	cart, err := s.carts.FindByID(ctx, *user.Cart)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	populated := &models.PopulatedCart{
		ID:       cart.ID,
		Products: []models.Product{},
		Total:    cart.Total,
	}
	for _, id := range cart.Products {
		if product, err := s.products.FindByID(ctx, id); err == nil {
			populated.Products = append(populated.Products, *product)
		}
	}
	return populated, nil
}

// Add fusionne les ids demandés avec le panier existant (union sans doublons)
// et recalcule le total depuis les prix courants de l'ensemble final.
// Lecture-modification-écriture sans verrou : deux ajouts concurrents pour le
// même utilisateur se résolvent en last-write-wins sur le document panier.
func (s *CartService) Add(ctx context.Context, email string, productIDs []string) (*models.Cart, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	// Les ids non parsables sont traités comme des produits non résolus :
	// ignorés, sans faire échouer l'opération.
	skipped := 0
	requested := make([]primitive.ObjectID, 0, len(productIDs))
	for _, raw := range productIDs {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			skipped++
			continue
		}
		requested = append(requested, oid)
	}

	var cart *models.Cart
	if user.Cart != nil {
		cart, err = s.carts.FindByID(ctx, *user.Cart)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	if cart == nil {
		// Premier ajout : création paresseuse du panier puis lien sur
		// l'utilisateur.
		products := dedupe(requested)
		cart = &models.Cart{
			Products: products,
			Total:    s.sumPrices(ctx, products, &skipped),
		}
		if err := s.carts.Insert(ctx, cart); err != nil {
			return nil, err
		}
		if err := s.users.SetCart(ctx, user.ID, cart.ID); err != nil {
			return nil, err
		}
	} else {
		seen := make(map[primitive.ObjectID]bool, len(cart.Products))
		for _, id := range cart.Products {
			seen[id] = true
		}
		for _, id := range requested {
			if !seen[id] {
				cart.Products = append(cart.Products, id)
				seen[id] = true
			}
		}
		cart.Total = s.sumPrices(ctx, cart.Products, &skipped)
		if err := s.carts.Update(ctx, cart.ID, cart.Products, cart.Total); err != nil {
			return nil, err
		}
	}

	if skipped > 0 {
		log.Printf("⚠️  %d produit(s) non résolu(s) ignoré(s) dans le panier %s", skipped, cart.ID.Hex())
	}
	return cart, nil
}

// sumPrices additionne les prix courants ; un produit introuvable contribue
// pour zéro.
func (s *CartService) sumPrices(ctx context.Context, ids []primitive.ObjectID, skipped *int) float64 {
	total := 0.0
	for _, id := range ids {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			*skipped++
			continue
		}
		total += product.Price
	}
	return total
}

func dedupe(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}
