package typid

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// ID is a unique identifier (UUID v4) bound to the entity type T.
//
// The type parameter is a compile-time tag only: it occupies no storage and
// takes no part in equality, ordering, hashing or serialization. An ID[User]
// and an ID[Order] share the same 16-byte layout at runtime, yet the compiler
// rejects assigning or comparing one where the other is expected.
//
// IDs have value semantics: they are copyable, comparable with == and usable
// as map keys. The zero value is the nil (all-zero) identifier.
type ID[T any] struct {
	id uuid.UUID
}

// New generates a fresh random identifier for T.
// The payload is a version 4 UUID drawn from the process-wide crypto/rand
// source; New is safe for concurrent use from multiple goroutines.
func New[T any]() ID[T] {
	return ID[T]{id: uuid.New()}
}

// FromBytes creates an identifier whose payload is exactly b.
// The bytes are taken verbatim: no version or variant bits are validated or
// rewritten, so the caller is responsible for supplying RFC 4122 compliant
// data if standard-format compliance is required.
func FromBytes[T any](b [16]byte) ID[T] {
	return ID[T]{id: uuid.UUID(b)}
}

// FromUUID tags an untyped UUID as an identifier for T.
// Together with the UUID accessor it forms the only bridge between
// differently tagged identifier spaces.
func FromUUID[T any](u uuid.UUID) ID[T] {
	return ID[T]{id: u}
}

// Parse parses an identifier from its string representation.
// It accepts the canonical hyphenated form as well as the braced, URN and
// 32-digit hex variants understood by github.com/google/uuid. The tag T comes
// from the calling context, never from the input text. On malformed input it
// returns a *ParseError carrying the rejected string.
func Parse[T any](s string) (ID[T], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[T]{}, &ParseError{Input: s, cause: err}
	}
	return ID[T]{id: u}, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse[T any](s string) ID[T] {
	id, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("typid: Parse(%q): %v", s, err))
	}
	return id
}

// UUID returns the underlying untyped UUID by copy.
// This is the deliberate type-erasing escape hatch for interop with code that
// does not carry the tag.
func (id ID[T]) UUID() uuid.UUID {
	return id.id
}

// Bytes returns a copy of the raw 16-byte payload.
func (id ID[T]) Bytes() [16]byte {
	return [16]byte(id.id)
}

// String returns the canonical string representation of the identifier
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (id ID[T]) String() string {
	return id.id.String()
}

// IsNil returns true if the identifier is the nil identifier (all zeros),
// which is also the zero value of ID.
func (id ID[T]) IsNil() bool {
	return id.id == uuid.Nil
}

// Equal returns true if id and other carry the same payload.
// IDs with matching tags are also comparable with ==; comparing IDs with
// different tags does not compile.
func (id ID[T]) Equal(other ID[T]) bool {
	return id.id == other.id
}

// Compare returns an integer comparing two identifiers lexicographically by
// payload bytes. The result will be 0 if id==other, -1 if id < other, and
// +1 if id > other. The order is total but arbitrary with respect to
// generation time; it does not reflect creation order.
func (id ID[T]) Compare(other ID[T]) int {
	return bytes.Compare(id.id[:], other.id[:])
}
