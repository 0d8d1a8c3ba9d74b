package kernel

import (
	"fmt"
	"strings"

	"coldchain/internal/pkg/errs"
)

// MaxPrincipalLength bounds the length of a principal identity string.
const MaxPrincipalLength = 128

// Principal is an opaque identity of an already-authenticated caller: a producer,
// a carrier, a warehouse, or the registry owner. The core treats it as a token
// handed in by the execution environment and only ever compares it for equality.
//
// The zero value is invalid; use NewPrincipal.
//
// Example:
//
//	carrier, err := kernel.NewPrincipal("carrier-acme")
//	if err != nil {
//	    return err
//	}
type Principal struct {
	id string
}

// NewPrincipal creates a Principal from its identity string.
// The string must be non-empty after trimming and at most MaxPrincipalLength runes.
func NewPrincipal(id string) (Principal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Principal{}, errs.NewValueIsRequiredError("principal")
	}
	if len(id) > MaxPrincipalLength {
		return Principal{}, errs.NewValueIsOutOfRangeError("principal length", len(id), 1, MaxPrincipalLength)
	}
	return Principal{id: id}, nil
}

// String returns the identity string of the principal.
func (p Principal) String() string {
	return p.id
}

// IsEqual reports whether two principals carry the same identity.
func (p Principal) IsEqual(other Principal) bool {
	return p.id == other.id
}

// Validate returns an error if the principal is a zero value.
func (p Principal) Validate() error {
	if p.id == "" {
		return errs.NewValueIsRequiredErrorWithCause(
			"principal",
			fmt.Errorf("Principal must be created via NewPrincipal"),
		)
	}
	return nil
}
