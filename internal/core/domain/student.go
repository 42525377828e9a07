package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrStudentNotFound = errors.New("student not found")
var ErrDuplicateStudent = errors.New("student already exists")

// ErrStoreUnavailable wraps persistence failures so the transport layer can
// distinguish a retryable backend outage from a validation failure.
var ErrStoreUnavailable = errors.New("store unavailable")

// Student models a roster member. The password is only ever held as a bcrypt
// hash; the cleartext never reaches persistence or logs.
type Student struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Department   string    `json:"department" bson:"department"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
