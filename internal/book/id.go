package book

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDLength is the length of ids produced by NanoID.
const IDLength = 16

// IDGenerator produces a new record identifier.
type IDGenerator func() (string, error)

// NanoID returns url-safe random ids of IDLength characters.
func NanoID() (string, error) {
	return gonanoid.New(IDLength)
}

// UUID returns random version 4 UUIDs.
func UUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// GeneratorFor resolves a configured id scheme name.
func GeneratorFor(scheme string) (IDGenerator, error) {
	switch scheme {
	case "", "nanoid":
		return NanoID, nil
	case "uuid":
		return UUID, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}
