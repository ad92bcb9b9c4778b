package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a customer request, either tied to a catalog product or a free-form
// custom request. ProductName is a snapshot taken at creation time so the order
// stays readable after the product is deleted.
type Order struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	ProductID     *primitive.ObjectID `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName   string              `bson:"productName,omitempty" json:"productName,omitempty"`
	UserName      string              `bson:"userName" json:"userName"`
	UserMobile    string              `bson:"userMobile" json:"userMobile"`
	CustomDetails string              `bson:"customDetails,omitempty" json:"customDetails,omitempty"`
	IsCustom      bool                `bson:"isCustom" json:"isCustom"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
}
