// Package mtg encodes and decodes the compact memo bodies carried by
// outputs and transfers. Values are packed back to back as msgpack
// primitives so a handler can scan a prefix and keep the remainder.
package mtg

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/fox-one/msgpack"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// RawMessage opaque payload encoded as msgpack bytes
type RawMessage []byte

// Encode packs values into a single memo body.
func Encode(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)

	for _, v := range values {
		var err error
		switch x := v.(type) {
		case int:
			err = enc.EncodeInt64(int64(x))
		case int8:
			err = enc.EncodeInt64(int64(x))
		case int64:
			err = enc.EncodeInt64(x)
		case uint64:
			err = enc.EncodeUint64(x)
		case string:
			err = enc.EncodeString(x)
		case uuid.UUID:
			err = enc.EncodeBytes(x.Bytes())
		case RawMessage:
			err = enc.EncodeBytes(x)
		case decimal.Decimal:
			err = enc.EncodeString(x.String())
		default:
			err = enc.Encode(v)
		}

		if err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// Scan decodes values from body in order and returns the unread remainder.
func Scan(body []byte, dest ...interface{}) ([]byte, error) {
	r := bytes.NewReader(body)
	dec := msgpack.NewDecoder(r)

	for _, d := range dest {
		if err := scanValue(dec, d); err != nil {
			return nil, err
		}
	}

	remain, err := ioutil.ReadAll(io.MultiReader(dec.Buffered(), r))
	if err != nil {
		return nil, err
	}

	return remain, nil
}

func scanValue(dec *msgpack.Decoder, d interface{}) error {
	switch x := d.(type) {
	case *int:
		v, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		*x = int(v)
	case *int8:
		v, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		*x = int8(v)
	case *int64:
		v, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		*x = v
	case *uint64:
		v, err := dec.DecodeUint64()
		if err != nil {
			return err
		}
		*x = v
	case *string:
		v, err := dec.DecodeString()
		if err != nil {
			return err
		}
		*x = v
	case *uuid.UUID:
		b, err := dec.DecodeBytes()
		if err != nil {
			return err
		}
		v, err := uuid.FromBytes(b)
		if err != nil {
			return err
		}
		*x = v
	case *RawMessage:
		b, err := dec.DecodeBytes()
		if err != nil {
			return err
		}
		*x = b
	case *decimal.Decimal:
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		*x = v
	default:
		if err := dec.Decode(d); err != nil {
			return fmt.Errorf("mtg: decode %T: %w", d, err)
		}
	}

	return nil
}
