package domain

import (
	"fmt"
	"time"
)

// Role represents an operator role in the system
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
)

// ParseRole validates a role string against the closed role set.
// Unknown roles are rejected at user-creation time so every account
// on file can pass at least one permission check.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleStaff:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// User represents a registered operator account
type User struct {
	Username  string
	Password  string // Plaintext - this system carries no credential security
	Role      Role
	CreatedAt time.Time
}

// Product represents a catalog item.
// Stock decreases only through a successful sale and increases only
// through restock; Sold increases by the same amount Stock decreases.
type Product struct {
	ID            int
	Name          string
	PurchasePrice float64
	SellingPrice  float64
	Stock         int
	Sold          int
}

// Revenue is the lifetime takings for the product at the current
// selling price, derived at read time and never stored.
func (p *Product) Revenue() float64 {
	return p.SellingPrice * float64(p.Sold)
}

// SalesTransaction represents one recorded sale.
// Seq is the 1-based ledger position and is the receipt identifier;
// ProductID is a reference back to the catalog item. ProductName and
// PricePerUnit are snapshots taken at sale time and do not track
// later catalog changes.
type SalesTransaction struct {
	Seq          int
	ProductID    int
	ProductName  string
	Quantity     int
	PricePerUnit float64
	TotalAmount  float64
	Timestamp    time.Time
}

// Session represents an authenticated operator.
// It is a value handed to every gated operation - there is no ambient
// "current user" anywhere in the system.
type Session struct {
	ID       string
	Username string
	Role     Role
	LoginAt  time.Time
}
