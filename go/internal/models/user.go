package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the system. The draft engine reads users only to
// decide whether a roster still has a live owner behind it.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
