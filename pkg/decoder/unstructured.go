package decoder

import (
	"bytes"
	"encoding/json"
)

// Unstructured holds a document whose resource type is not registered. It
// re-encodes to the same JSON it was read from, modulo key order.
type Unstructured struct {
	Object map[string]any
}

// GetType returns the ARM resource type of the document, if any.
func (u *Unstructured) GetType() string {
	t, _ := u.Object["type"].(string)
	return t
}

func (u *Unstructured) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Object)
}

func (u *Unstructured) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(&u.Object)
}
