package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shoply_back_end/internal/models"
)

type MongoUserRepository struct {
	db *mongo.Database
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{db: db}
}

func (r *MongoUserRepository) col() (*mongo.Collection, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}
	return r.db.Collection("users"), nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	col, err := r.col()
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *models.User) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err = col.InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepository) SetCart(ctx context.Context, userID, cartID primitive.ObjectID) error {
	col, err := r.col()
	if err != nil {
		return err
	}
	res, err := col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"cart": cartID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
