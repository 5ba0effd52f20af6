// Package util provides small shared helpers for DayStock.
package util

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID generates a new random item identifier.
func NewID() string {
	return uuid.New().String()
}

// ParseID validates and normalizes a UUID string.
func ParseID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid ID format: %w", err)
	}
	return id.String(), nil
}

// IsValidID checks if a string is a valid UUID format.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
