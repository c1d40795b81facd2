package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/apperr"
	"shoply_back_end/internal/cache"
	"shoply_back_end/internal/models"
	"shoply_back_end/internal/repository"
)

// CatalogService : CRUD produit. Les écritures invalident le cache de liste.
type CatalogService struct {
	products repository.ProductRepository
	users    repository.UserRepository
	cache    *cache.ProductCache
}

func NewCatalogService(products repository.ProductRepository, users repository.UserRepository, productCache *cache.ProductCache) *CatalogService {
	return &CatalogService{products: products, users: users, cache: productCache}
}

// List renvoie tous les produits, sans pagination ni filtre.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	if products, ok := s.cache.Get(ctx); ok {
		return products, nil
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, products)
	return products, nil
}

// Create attribue le produit à l'utilisateur résolu depuis l'email vérifié.
func (s *CatalogService) Create(ctx context.Context, email string, fields models.ProductFields) (*models.Product, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        fields.Name,
		Image:       fields.Image,
		Description: fields.Description,
		Stock:       fields.Stock,
		Brand:       fields.Brand,
		Price:       fields.Price,
		User:        user.ID,
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return product, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseProductID(id)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Update remplace l'intégralité des champs modifiables du produit.
func (s *CatalogService) Update(ctx context.Context, id string, fields models.ProductFields) (*models.Product, error) {
	oid, err := parseProductID(id)
	if err != nil {
		return nil, err
	}
	product, err := s.products.Update(ctx, oid, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return product, nil
}

// Delete supprime le produit et renvoie le document supprimé.
func (s *CatalogService) Delete(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseProductID(id)
	if err != nil {
		return nil, err
	}
	product, err := s.products.Delete(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return product, nil
}

func parseProductID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, apperr.Validation("Product id not found")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Product id is invalid")
	}
	return oid, nil
}
