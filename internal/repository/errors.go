package repository

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// ValidID reports whether id is well-formed for this store. Callers should
// use this instead of assuming any particular id format.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
