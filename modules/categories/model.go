package categories

import "go.mongodb.org/mongo-driver/v2/bson"

// Category is a node in the category tree. Parent holds the hex ID of the
// parent category and is empty for top-level categories.
type Category struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Parent    string        `bson:"parent,omitempty" json:"parent,omitempty"`
	CreatedBy string        `bson:"createdBy" json:"createdBy"`
}
