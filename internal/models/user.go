package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User : l'email sert de clé d'identité. Le token est émis une seule fois à
// l'inscription et n'est jamais ré-émis ensuite.
type User struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name     string              `bson:"name" json:"name"`
	Email    string              `bson:"email" json:"email"`
	Password string              `bson:"password" json:"-"`
	Token    string              `bson:"token" json:"-"`
	Role     string              `bson:"role" json:"role"`
	Cart     *primitive.ObjectID `bson:"cart,omitempty" json:"cart,omitempty"`
}
