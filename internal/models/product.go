package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	CountInStock int                `bson:"countInStock" json:"countInStock"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	Tags         StringList         `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
