package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shoply_back_end/internal/models"
	"shoply_back_end/internal/repository"
)

// Implémentations mémoire des repositories pour les tests de services.

type memUserRepo struct {
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*models.User{}}
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Insert(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *memUserRepo) SetCart(_ context.Context, userID, cartID primitive.ObjectID) error {
	for _, u := range r.byEmail {
		if u.ID == userID {
			id := cartID
			u.Cart = &id
			return nil
		}
	}
	return repository.ErrNotFound
}

type memProductRepo struct {
	order []primitive.ObjectID
	byID  map[primitive.ObjectID]*models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[primitive.ObjectID]*models.Product{}}
}

func (r *memProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	products := []models.Product{}
	for _, id := range r.order {
		products = append(products, *r.byID[id])
	}
	return products, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Insert(_ context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	cp := *product
	r.byID[product.ID] = &cp
	r.order = append(r.order, product.ID)
	return nil
}

func (r *memProductRepo) Update(_ context.Context, id primitive.ObjectID, fields models.ProductFields) (*models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Name = fields.Name
	p.Image = fields.Image
	p.Description = fields.Description
	p.Stock = fields.Stock
	p.Brand = fields.Brand
	p.Price = fields.Price
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return p, nil
}

type memCartRepo struct {
	byID map[primitive.ObjectID]*models.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{byID: map[primitive.ObjectID]*models.Cart{}}
}

func (r *memCartRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Cart, error) {
	cart, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *cart
	cp.Products = append([]primitive.ObjectID(nil), cart.Products...)
	return &cp, nil
}

func (r *memCartRepo) Insert(_ context.Context, cart *models.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	cp := *cart
	cp.Products = append([]primitive.ObjectID(nil), cart.Products...)
	r.byID[cart.ID] = &cp
	return nil
}

func (r *memCartRepo) Update(_ context.Context, id primitive.ObjectID, products []primitive.ObjectID, total float64) error {
	cart, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	cart.Products = append([]primitive.ObjectID(nil), products...)
	cart.Total = total
	return nil
}
