package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shoply_back_end/internal/models"
)

type MongoProductRepository struct {
	db *mongo.Database
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{db: db}
}

func (r *MongoProductRepository) col() (*mongo.Collection, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}
	return r.db.Collection("products"), nil
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *MongoProductRepository) Insert(ctx context.Context, product *models.Product) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, product)
	return err
}

// Update remplace l'intégralité des champs modifiables et renvoie le document
// après écriture.
func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, fields models.ProductFields) (*models.Product, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"name":        fields.Name,
		"image":       fields.Image,
		"description": fields.Description,
		"stock":       fields.Stock,
		"brand":       fields.Brand,
		"price":       fields.Price,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Delete supprime le produit et renvoie le document supprimé.
func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}
