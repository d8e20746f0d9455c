package auth

import "time"

// Role is the closed set of account types. It is resolved once per request
// by the auth middleware; downstream code branches on the typed value, never
// on a raw string from the wire.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleWorker:
		return Role(s), true
	case "":
		return RoleCustomer, true
	}
	return "", false
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal is the authenticated caller as seen by every request handler:
// the resolved identity, display name, contact phone and role, nothing else.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  Role   `json:"userType"`
}

func (u User) Principal() Principal {
	return Principal{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
