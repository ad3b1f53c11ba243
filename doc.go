// Package typid provides unique identifiers (UUID v4) bound to a specific
// entity type at compile time.
//
// ID[T] wraps a 128-bit random identifier and tags it with the type parameter
// T. The tag occupies no storage and takes no part in runtime behavior; it
// exists so that identifiers for different entity kinds are distinct,
// non-interchangeable types even though they share an identical 16-byte
// representation. This prevents a whole class of bugs where, say, an order ID
// is accidentally passed where a user ID is expected:
//
//	type User struct {
//	    ID typid.ID[User]
//	}
//
//	type Order struct {
//	    ID typid.ID[Order]
//	}
//
//	a := User{ID: typid.New[User]()}
//	b := User{ID: typid.New[User]()}
//	fmt.Println(a.ID == b.ID) // false
//
//	// a.ID == Order{}.ID does not compile: mismatched tags.
//
// Basic Usage:
//
//	// Generate a new identifier
//	id := typid.New[User]()
//	fmt.Println(id.String())
//
//	// Parse an identifier from string
//	id, err := typid.Parse[User]("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Construct from raw bytes (taken verbatim, no validation)
//	id := typid.FromBytes[User](raw)
//
// Serialization:
//
// In JSON, YAML and SQL an identifier is always a single string field holding
// the canonical 36-character hyphenated lowercase form. ID implements
// encoding.TextMarshaler/TextUnmarshaler, json.Marshaler/Unmarshaler,
// encoding.BinaryMarshaler/BinaryUnmarshaler, yaml.Marshaler/Unmarshaler and
// sql.Scanner/driver.Valuer. Decoding re-establishes the tag from the target
// type; malformed input yields a *ParseError carrying the rejected string.
//
// Interop:
//
// The UUID accessor and FromUUID constructor bridge to untyped
// github.com/google/uuid values for code that cannot carry the tag, such as
// database layers or binary wire protocols. They are the only way to move a
// value between differently tagged identifier spaces.
//
// Thread Safety:
//
// ID is an immutable value type; constructing, comparing, hashing and
// converting identifiers is safe from any number of goroutines without
// coordination. New draws from crypto/rand, which is safe for concurrent use.
package typid
