package users

import "time"

// Account is a registered user as seen by the rest of the system.
// The password hash never leaves the repository layer.
type Account struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
	ID        int64     `json:"id" db:"id"`
}
