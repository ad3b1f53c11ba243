package typid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// In every structured format the identifier occupies a single string field
// holding the canonical text form, never raw bytes or a nested object. The
// tag T of the decoded value comes from the target's declared type, not from
// the payload.

// MarshalText implements the encoding.TextMarshaler interface
func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// On malformed input the receiver is left unchanged and the returned
// *ParseError carries the rejected text.
func (id *ID[T]) UnmarshalText(data []byte) error {
	parsed, err := Parse[T](string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface, encoding the
// identifier as a JSON string
func (id ID[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.id.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Anything but a JSON string holding a valid identifier is rejected; the
// receiver is never silently replaced with a default value.
func (id *ID[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse[T](s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface,
// emitting the raw 16-byte payload
func (id ID[T]) MarshalBinary() ([]byte, error) {
	return id.id[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (id *ID[T]) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(id.id[:], data)
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface for gopkg.in/yaml.v3,
// encoding the identifier as a plain string scalar
func (id ID[T]) MarshalYAML() (interface{}, error) {
	return id.id.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// yaml.v3 does not consult encoding.TextUnmarshaler on decode, so this hook
// applies the same parsing rule as UnmarshalText.
func (id *ID[T]) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse[T](s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// It accepts canonical strings, raw 16-byte values, byte slices holding the
// string form, and NULL (which leaves the receiver unchanged).
func (id *ID[T]) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		parsed, err := Parse[T](src)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		if len(src) == 16 {
			copy(id.id[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		parsed, err := Parse[T](string(src))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("typid: cannot scan type %T into ID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility,
// storing the canonical string form
func (id ID[T]) Value() (driver.Value, error) {
	return id.id.String(), nil
}
