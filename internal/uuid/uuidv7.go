// Package uuid issues the request identifiers used across logs and responses.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, falling back to a random UUIDv4
// if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// OrNew returns candidate when it is a valid UUID and a fresh identifier otherwise.
func OrNew(candidate string) string {
	if candidate != "" && IsValid(candidate) {
		return candidate
	}
	return New()
}
