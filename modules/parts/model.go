package parts

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Part is a stocked inventory item. Manufacturer, Package, and Category hold
// the hex IDs of the referenced documents; CreatedBy is set by the server
// from the session claims.
type Part struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Manufacturer string        `bson:"manufacturer" json:"manufacturer"`
	Package      string        `bson:"package" json:"package"`
	Price        float64       `bson:"price" json:"price"`
	Count        int           `bson:"count" json:"count"`
	Category     string        `bson:"category,omitempty" json:"category,omitempty"`
	CreatedOn    time.Time     `bson:"createdOn" json:"createdOn"`
	CreatedBy    string        `bson:"createdBy" json:"createdBy"`
}
