package users

import "go.mongodb.org/mongo-driver/v2/bson"

// Rights is the full authorization profile of a user. It travels inside the
// session token, so changing it invalidates the user's sessions.
type Rights struct {
	CanModifyParts bool `bson:"canModifyParts" json:"canModifyParts"`
	CanDeleteParts bool `bson:"canDeleteParts" json:"canDeleteParts"`
	CanModifyUsers bool `bson:"canModifyUsers" json:"canModifyUsers"`
	CanDeleteUsers bool `bson:"canDeleteUsers" json:"canDeleteUsers"`
}

// User is the durable user document. ValidTokens is the session ledger: the
// IDs of every token this user may currently present. The password hash and
// the ledger never appear in JSON responses.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"`
	Rights       Rights        `bson:"rights" json:"rights"`
	ValidTokens  []string      `bson:"validTokens" json:"-"`
}
