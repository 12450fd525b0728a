package schemas

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jrazmi/pollschema/sdk/cryptids"
)

// newCUID returns the given id or a fresh cuid.
func newCUID(given *string) (string, error) {
	if given != nil {
		return *given, nil
	}
	id, err := cryptids.GenerateCUID()
	if err != nil {
		return "", fmt.Errorf("generate cuid: %w", err)
	}
	return id, nil
}

// newUUID returns the given id or a fresh random uuid.
func newUUID(given *string) string {
	if given != nil {
		return *given
	}
	return uuid.NewString()
}
