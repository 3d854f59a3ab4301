package models

// Identity is the authenticated caller resolved from a bearer token.
// It is produced once by the identity gateway and threaded explicitly
// into every engine call.
type Identity struct {
	UserID   uint
	Username string
}
