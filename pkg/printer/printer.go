/*
Copyright 2019 Alexander Eldeib.
*/

// Package printer writes decoded models as JSON or YAML documents, and dumps
// Go values for debugging.
package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	sigyaml "sigs.k8s.io/yaml"

	"github.com/alexeldeib/azmodels/pkg/config"
)

// Dump styles.
const (
	DumpLitter = "litter"
	DumpSpew   = "spew"
)

// Printer encodes documents in the configured format.
type Printer struct {
	out    io.Writer
	format string
	indent int
	count  int
}

// New returns a printer writing format to out.
func New(out io.Writer, format string, indent int) *Printer {
	return &Printer{
		out:    out,
		format: format,
		indent: indent,
	}
}

// ForConfig returns a printer using the output settings of c.
func ForConfig(out io.Writer, c *config.Config) *Printer {
	return New(out, c.Output(), c.Indent())
}

// Print writes one document. YAML documents after the first are preceded by
// a separator so the output can be decoded again as a stream.
func (p *Printer) Print(obj any) error {
	data, err := Encode(obj, p.format, p.indent)
	if err != nil {
		return err
	}
	if p.format == config.OutputYAML && p.count > 0 {
		if _, err := io.WriteString(p.out, "---\n"); err != nil {
			return errors.Wrap(err, "failed to write document separator")
		}
	}
	p.count++
	if _, err := p.out.Write(data); err != nil {
		return errors.Wrap(err, "failed to write document")
	}
	return nil
}

// Encode renders obj as a single JSON or YAML document ending in a newline.
func Encode(obj any, format string, indent int) ([]byte, error) {
	switch format {
	case config.OutputJSON:
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}
		if err := enc.Encode(obj); err != nil {
			return nil, errors.Wrap(err, "failed to encode json")
		}
		return buf.Bytes(), nil
	case config.OutputYAML:
		data, err := sigyaml.Marshal(obj)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode yaml")
		}
		return data, nil
	default:
		return nil, errors.Errorf("unsupported output format %q", format)
	}
}

// Canonical re-encodes a JSON document with sorted keys and two space
// indentation, so that documents differing only in layout compare equal.
// Numbers keep their original digits.
func Canonical(data []byte) ([]byte, error) {
	v, err := canonicalValue(data)
	if err != nil {
		return nil, err
	}
	return Encode(v, config.OutputJSON, 2)
}

// CanonicalObject is Canonical for a decoded JSON object, after removing the
// named top-level keys.
func CanonicalObject(data []byte, drop ...string) ([]byte, error) {
	v, err := canonicalValue(data)
	if err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		for _, key := range drop {
			delete(m, key)
		}
	}
	return Encode(v, config.OutputJSON, 2)
}

func canonicalValue(data []byte) (any, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "failed to parse json")
	}
	return v, nil
}

// Dump writes a Go-syntax rendering of obj in the given style.
func Dump(out io.Writer, obj any, style string) error {
	var s string
	switch style {
	case DumpLitter:
		s = litter.Options{HidePrivateFields: true}.Sdump(obj)
	case DumpSpew:
		s = (&spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}).Sdump(obj)
	default:
		return errors.Errorf("unsupported dump style %q, expected %s or %s", style, DumpLitter, DumpSpew)
	}
	if _, err := fmt.Fprintln(out, strings.TrimRight(s, "\n")); err != nil {
		return errors.Wrap(err, "failed to write dump")
	}
	return nil
}
