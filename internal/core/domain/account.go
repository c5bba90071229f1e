package domain

import "time"

// RoleUser is the implicit role granted to every registered account.
const RoleUser = "user"

// Account models a registered user of the job tracker. Every customer and job
// belongs to exactly one account.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole reports whether the account was granted role.
func (a Account) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
