package cpf

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// MarshalBSONValue stores the CPF as its 11-digit string, matching how CPFs
// are keyed in citizen documents. The zero value is stored as null.
func (c CPF) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if c.IsZero() {
		return bsontype.Null, nil, nil
	}
	return bsontype.String, bsoncore.AppendString(nil, c.String()), nil
}

// UnmarshalBSONValue decodes a CPF stored as a string or as an integer.
// Every stored value goes through Parse or New.
func (c *CPF) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bsoncore.Value{Type: t, Data: data}

	var (
		parsed CPF
		err    error
	)
	switch t {
	case bsontype.Null, bsontype.Undefined:
		return nil
	case bsontype.String:
		s, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("cpf: malformed bson string")
		}
		parsed, err = Parse(s)
	case bsontype.Int64:
		v, ok := raw.Int64OK()
		if !ok || v < 0 {
			return newParseError(raw.String(), ErrInvalidFormat)
		}
		parsed, err = New(uint64(v))
	case bsontype.Int32:
		v, ok := raw.Int32OK()
		if !ok || v < 0 {
			return newParseError(raw.String(), ErrInvalidFormat)
		}
		parsed, err = New(uint64(v))
	default:
		return fmt.Errorf("cpf: cannot decode bson %s", t)
	}
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
