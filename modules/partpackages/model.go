package partpackages

import "go.mongodb.org/mongo-driver/v2/bson"

// Mounting technology types.
const (
	TypeSMD = "SMD"
	TypeTHT = "THT"
)

// PartPackage is a physical footprint a part ships in. Names are unique
// across the catalog.
type PartPackage struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Type      string        `bson:"type" json:"type"`
	CreatedBy string        `bson:"createdBy" json:"createdBy"`
}
