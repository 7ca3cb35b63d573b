package domain

// Session links an opaque bearer token to a user identity. Sessions never
// expire and are never invalidated; a user may hold any number of them.
type Session struct {
	Token    string `json:"token" bson:"token"`
	UserID   string `json:"user_id" bson:"userId"`
	UserName string `json:"user" bson:"user"` // display-name snapshot taken at login
}
