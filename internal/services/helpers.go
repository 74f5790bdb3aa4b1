package services

import "github.com/google/uuid"

// parseUUID tolerates a malformed id by returning the zero UUID; lookups
// keyed on it simply find nothing.
func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
