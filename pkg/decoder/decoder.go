// Package decoder reads streams of YAML or JSON documents into the typed
// models of a registry.
package decoder

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/yaml"
	sigyaml "sigs.k8s.io/yaml"

	"github.com/alexeldeib/azmodels/pkg/registry"
)

// Document is one decoded entry of a stream.
type Document struct {
	// Index is the position of the document in the stream, ignoring empty documents.
	Index int
	// Kind is the registry kind used to decode, or empty for Unstructured.
	Kind string
	// Type and APIVersion are read from the document, if present.
	Type       string
	APIVersion string
	// Object is a pointer to a registered model or an *Unstructured.
	Object any
	// Raw is the document converted to JSON, before decoding.
	Raw []byte
}

// Option configures a Decoder.
type Option func(*Decoder)

// As decodes every document as the named kind instead of dispatching on its
// resource type.
func As(kind string) Option {
	return func(d *Decoder) {
		d.kind = kind
	}
}

// Strict rejects fields the target model does not declare. The document's
// apiVersion field is always accepted.
func Strict() Option {
	return func(d *Decoder) {
		d.strict = true
	}
}

type Decoder struct {
	reader   *yaml.YAMLReader
	registry *registry.Registry
	kind     string
	strict   bool
	index    int
	close    func() error
}

// Modified from https://github.com/kubernetes-sigs/cluster-api. Dispatches on
// ARM resource types instead of group/version/kind.
func NewYAMLDecoder(r io.ReadCloser, reg *registry.Registry, opts ...Option) *Decoder {
	d := &Decoder{
		reader:   yaml.NewYAMLReader(bufio.NewReader(r)),
		registry: reg,
		close:    r.Close,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode returns the next non-empty document, or io.EOF when the stream is
// exhausted. A document that fails to decode returns an error but does not
// stop the stream.
func (d *Decoder) Decode() (*Document, error) {
	for {
		doc, err := d.reader.Read()
		if err != nil {
			return nil, err
		}

		raw, err := sigyaml.YAMLToJSON(doc)
		if err != nil {
			idx := d.index
			d.index++
			return nil, &DocumentError{Index: idx, Err: errors.Wrapf(err, "document %d is not valid yaml or json", idx)}
		}

		// Skip over empty documents, i.e. a leading `---`, a trailing
		// separator or a document holding only comments. The reader keeps
		// the separator line, so emptiness shows only after conversion.
		if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			continue
		}

		idx := d.index
		d.index++
		out, err := d.decode(idx, raw)
		if err != nil {
			return nil, &DocumentError{Index: idx, Err: err}
		}
		return out, nil
	}
}

// decode turns the JSON form of one document into a Document.
func (d *Decoder) decode(idx int, raw []byte) (*Document, error) {
	var peek map[string]any
	peekDec := json.NewDecoder(bytes.NewReader(raw))
	peekDec.UseNumber()
	if err := peekDec.Decode(&peek); err != nil {
		return nil, errors.Wrapf(err, "document %d is not an object", idx)
	}
	out := &Document{Index: idx, Raw: raw}
	out.Type, _ = peek["type"].(string)
	out.APIVersion, _ = peek["apiVersion"].(string)

	kind, ok, err := d.kindFor(out.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "document %d", idx)
	}
	if !ok {
		out.Object = &Unstructured{Object: peek}
		return out, nil
	}

	body := raw
	if d.strict {
		if body, err = withoutAPIVersion(peek, raw); err != nil {
			return nil, errors.Wrapf(err, "document %d", idx)
		}
	}

	obj := kind.New()
	dec := json.NewDecoder(bytes.NewReader(body))
	if d.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(obj); err != nil {
		return nil, errors.Wrapf(err, "decoding document %d as %s", idx, kind.Name)
	}
	out.Kind = kind.Name
	out.Object = obj
	return out, nil
}

// withoutAPIVersion drops the document level apiVersion field, which models
// do not declare.
func withoutAPIVersion(peek map[string]any, raw []byte) ([]byte, error) {
	if _, ok := peek["apiVersion"]; !ok {
		return raw, nil
	}
	trimmed := make(map[string]any, len(peek))
	for k, v := range peek {
		if k != "apiVersion" {
			trimmed[k] = v
		}
	}
	return json.Marshal(trimmed)
}

// DocumentError reports a single document that could not be decoded.
type DocumentError struct {
	Index int
	Err   error
}

func (e *DocumentError) Error() string {
	return e.Err.Error()
}

func (e *DocumentError) Cause() error {
	return e.Err
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func (d *Decoder) kindFor(resourceType string) (registry.Kind, bool, error) {
	if d.kind != "" {
		k, ok := d.registry.ForName(d.kind)
		if !ok {
			return registry.Kind{}, false, errors.Errorf("unknown kind %q", d.kind)
		}
		return k, true, nil
	}
	if resourceType == "" {
		return registry.Kind{}, false, nil
	}
	k, ok := d.registry.ForResourceType(resourceType)
	return k, ok, nil
}

func (d *Decoder) Close() error {
	return d.close()
}

// DecodeAll decodes every document of r. Documents that fail are skipped and
// their errors returned together once the stream ends.
func DecodeAll(r io.Reader, reg *registry.Registry, opts ...Option) ([]*Document, error) {
	d := NewYAMLDecoder(io.NopCloser(r), reg, opts...)
	defer d.Close()

	var (
		docs   []*Document
		result *multierror.Error
	)
	for {
		doc, err := d.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			result = multierror.Append(result, err)
			// Reader failures leave the stream in an unknown state.
			var docErr *DocumentError
			if !errors.As(err, &docErr) {
				break
			}
			continue
		}
		docs = append(docs, doc)
	}
	return docs, result.ErrorOrNil()
}
