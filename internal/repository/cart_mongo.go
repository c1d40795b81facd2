package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shoply_back_end/internal/models"
)

type MongoCartRepository struct {
	db *mongo.Database
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{db: db}
}

func (r *MongoCartRepository) col() (*mongo.Collection, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}
	return r.db.Collection("carts"), nil
}

func (r *MongoCartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *MongoCartRepository) Insert(ctx context.Context, cart *models.Cart) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, cart)
	return err
}

func (r *MongoCartRepository) Update(ctx context.Context, id primitive.ObjectID, products []primitive.ObjectID, total float64) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"products": products,
		"total":    total,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
