package utils

import "github.com/google/uuid"

// GenerateUUID returns a random (v4) UUID string.
func GenerateUUID() string {
	return uuid.NewString()
}

// ShortID is the first block of a UUID, used for request IDs.
func ShortID() string {
	return uuid.New().String()[:8]
}
