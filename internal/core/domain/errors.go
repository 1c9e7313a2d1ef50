package domain

import "errors"

// Common domain errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidInput       = errors.New("invalid input")
)

// User errors
var (
	ErrInvalidRole = errors.New("invalid role")
	ErrUserExists  = errors.New("username already registered")
)

// Catalog errors
var (
	ErrProductExists   = errors.New("product id already in catalog")
	ErrProductNotFound = errors.New("product not found")
)

// Sales errors
var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("not enough stock available")
	ErrReceiptNotFound   = errors.New("invalid transaction id")
	ErrInvalidPeriod     = errors.New("invalid period specified")
)
