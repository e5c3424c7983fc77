package valueobject

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Identity – immutable value object
// ---------------------------------------------------------------------------

// Identity is an on-platform account address: a borrower or the
// administrator. Addresses are opaque to the service beyond basic shape
// checks; the platform's proof layer is what ties a caller to an address.
type Identity struct {
	value string
}

const maxIdentityLength = 64

// NewIdentity creates an Identity from a raw address string.
func NewIdentity(s string) (Identity, error) {
	if s == "" {
		return Identity{}, fmt.Errorf("invalid identity: empty address")
	}
	if len(s) > maxIdentityLength {
		return Identity{}, fmt.Errorf("invalid identity: address longer than %d characters", maxIdentityLength)
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return Identity{}, fmt.Errorf("invalid identity: address contains whitespace")
	}
	return Identity{value: s}, nil
}

// String returns the address string.
func (i Identity) String() string { return i.value }

// IsZero returns true if the identity has not been initialised.
func (i Identity) IsZero() bool { return i.value == "" }

// Equal returns true when both identities carry the same address.
func (i Identity) Equal(other Identity) bool { return i.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (i Identity) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating the address.
func (i *Identity) UnmarshalText(text []byte) error {
	id, err := NewIdentity(string(text))
	if err != nil {
		return err
	}
	*i = id
	return nil
}
