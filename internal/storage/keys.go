// Package storage defines the typed key space, the ledger-tick clock, and the
// Store contract the persistence backends implement. Records live in four
// closed key classes; there is no untyped key construction.
package storage

import "fmt"

// KeyClass groups keys by retention policy.
type KeyClass int

const (
	// ClassScore records expire ScoreTTL ticks after their last write or
	// renewal.
	ClassScore KeyClass = iota
	// ClassPersistent records never expire.
	ClassPersistent
)

type keyKind int

const (
	kindScore keyKind = iota
	kindLoan
	kindCounter
	kindAdmin
)

// Key identifies one record in the store. Keys are built only through the
// constructors below so every record lands in a known namespace.
type Key struct {
	kind     keyKind
	identity string
	loanID   uint64
}

// ScoreKey addresses the credit score record of an identity.
func ScoreKey(identity string) Key {
	return Key{kind: kindScore, identity: identity}
}

// LoanKey addresses a loan record by its allocated id.
func LoanKey(id uint64) Key {
	return Key{kind: kindLoan, loanID: id}
}

// CounterKey addresses the loan id allocation counter singleton.
func CounterKey() Key {
	return Key{kind: kindCounter}
}

// AdminKey addresses the administrator identity singleton.
func AdminKey() Key {
	return Key{kind: kindAdmin}
}

// Path renders the namespaced storage path of the key.
func (k Key) Path() string {
	switch k.kind {
	case kindScore:
		return "score:" + k.identity
	case kindLoan:
		return fmt.Sprintf("loan:%d", k.loanID)
	case kindCounter:
		return "loan_counter"
	case kindAdmin:
		return "admin_identity"
	default:
		return ""
	}
}

// Class returns the retention class of the key.
func (k Key) Class() KeyClass {
	if k.kind == kindScore {
		return ClassScore
	}
	return ClassPersistent
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return k.Path()
}
