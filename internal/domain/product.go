package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Price          float64            `bson:"price" json:"price"`
	OriginalPrice  float64            `bson:"original_price,omitempty" json:"original_price,omitempty"`
	Images         []string           `bson:"images" json:"images"`
	Videos         []string           `bson:"videos" json:"videos"`
	Category       string             `bson:"category" json:"category"`
	Tags           []string           `bson:"tags" json:"tags"`
	InStock        bool               `bson:"in_stock" json:"in_stock"`
	Colors         []string           `bson:"colors,omitempty" json:"colors,omitempty"`
	Sizes          []string           `bson:"sizes,omitempty" json:"sizes,omitempty"`
	Specifications map[string]string  `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Rating         float64            `bson:"rating" json:"rating"`
	ReviewCount    int64              `bson:"review_count" json:"review_count"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
