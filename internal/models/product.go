package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	Stock       int                `bson:"stock" json:"stock"`
	Brand       string             `bson:"brand" json:"brand"`
	Price       float64            `bson:"price" json:"price"`
	User        primitive.ObjectID `bson:"user,omitempty" json:"user"`
}

// ProductFields : champs modifiables d'un produit (création et remplacement
// complet à l'édition).
type ProductFields struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
}
