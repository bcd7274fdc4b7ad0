package manufacturers

import "go.mongodb.org/mongo-driver/v2/bson"

// Manufacturer is a company producing parts held in the inventory.
type Manufacturer struct {
	ID   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string        `bson:"name" json:"name"`
}
