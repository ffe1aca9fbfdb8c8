/*
Copyright 2019 Alexander Eldeib.
*/

package openenum

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Marshal encodes v as a JSON string using its wire spelling.
func (t *Table[T]) Marshal(v T) ([]byte, error) {
	return json.Marshal(t.Encode(v))
}

// Unmarshal decodes a JSON string into into. Any string is accepted for open
// families. JSON that is not a string is an error for every family. A JSON
// null leaves into untouched.
func (t *Table[T]) Unmarshal(data []byte, into *T) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var wire string
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrapf(err, "decoding %s", t.name)
	}
	v, err := t.Parse(wire)
	if err != nil {
		return err
	}
	*into = v
	return nil
}
