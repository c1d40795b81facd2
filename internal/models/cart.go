package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart : liste ordonnée de références produit, sans doublons. Total = somme
// des prix courants des produits résolus lors de la dernière écriture.
type Cart struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Products []primitive.ObjectID `bson:"products" json:"products"`
	Total    float64              `bson:"total" json:"total"`
}

// PopulatedCart : panier avec les références produit résolues en documents
// complets (réponse de GET /cart).
type PopulatedCart struct {
	ID       primitive.ObjectID `json:"id"`
	Products []Product          `json:"products"`
	Total    float64            `json:"total"`
}
