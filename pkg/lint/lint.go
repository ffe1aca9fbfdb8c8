/*
Copyright 2019 Alexander Eldeib.
*/

// Package lint reports enum values a model does not recognize, along with a
// few other signs that a document was written against a newer service.
package lint

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"

	"github.com/alexeldeib/azmodels/pkg/apiversion"
	"github.com/alexeldeib/azmodels/pkg/decoder"
	"github.com/alexeldeib/azmodels/pkg/openenum"
	"github.com/alexeldeib/azmodels/pkg/registry"
	"github.com/alexeldeib/azmodels/pkg/stringslice"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a single problem at a JSON path.
type Finding struct {
	Path     string
	Family   string
	Value    string
	Severity Severity
	Message  string
}

func (f Finding) Error() string {
	if f.Path == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}

// Report collects the findings for one object.
type Report struct {
	Findings []Finding
}

// Errors returns findings of error severity.
func (r Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns findings of warning severity.
func (r Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

func (r Report) filter(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// Err aggregates error findings, and warnings too when strict is set.
func (r Report) Err(strict bool) error {
	var result *multierror.Error
	for _, f := range r.Findings {
		if f.Severity == SeverityError || strict {
			result = multierror.Append(result, f)
		}
	}
	return result.ErrorOrNil()
}

type Option func(*Linter)

// Ignore skips the named enum families.
func Ignore(families ...string) Option {
	return func(l *Linter) {
		for _, f := range families {
			l.ignore = stringslice.Add(l.ignore, f)
		}
	}
}

// Endpoint sets the resource manager endpoint continuation links must point at.
func Endpoint(endpoint string) Option {
	return func(l *Linter) {
		l.endpoint = endpoint
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log logr.Logger) Option {
	return func(l *Linter) {
		l.log = log
	}
}

type Linter struct {
	registry *registry.Registry
	ignore   []string
	endpoint string
	log      logr.Logger
}

// New returns a linter for the kinds and enums of reg.
func New(reg *registry.Registry, opts ...Option) *Linter {
	l := &Linter{
		registry: reg,
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lint walks obj and reports every enum value its family does not know.
// obj is never modified.
func (l *Linter) Lint(obj any) Report {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return Report{}
	}
	w := &walker{enums: l.registry.Enums(), ignore: l.ignore}
	w.walk("", v)
	if c, ok := obj.(continuable); ok {
		if f, bad := l.checkContinuation(c); bad {
			w.findings = append(w.findings, f)
		}
	}
	l.log.V(1).Info("linted object", "type", fmt.Sprintf("%T", obj), "findings", len(w.findings))
	return Report{Findings: w.findings}
}

// LintDocument lints a decoded document and also checks its apiVersion
// against the version its model describes.
func (l *Linter) LintDocument(doc *decoder.Document) Report {
	r := l.Lint(doc.Object)
	if doc.APIVersion == "" || doc.Kind == "" {
		return r
	}
	k, ok := l.registry.ForName(doc.Kind)
	if !ok || k.APIVersion == "" {
		return r
	}
	if f, bad := checkAPIVersion(doc.APIVersion, k.APIVersion); bad {
		r.Findings = append([]Finding{f}, r.Findings...)
	}
	return r
}

func checkAPIVersion(docVersion, modelVersion string) (Finding, bool) {
	have, err := apiversion.Parse(docVersion)
	if err != nil {
		return Finding{
			Path:     "apiVersion",
			Value:    docVersion,
			Severity: SeverityWarning,
			Message:  err.Error(),
		}, true
	}
	want, err := apiversion.Parse(modelVersion)
	if err != nil || !have.Newer(want) {
		return Finding{}, false
	}
	return Finding{
		Path:     "apiVersion",
		Value:    docVersion,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("document targets %s but models describe %s; newer values decode as unknown", docVersion, modelVersion),
	}, true
}

type continuable interface {
	Continuation() (string, bool)
}

func (l *Linter) checkContinuation(c continuable) (Finding, bool) {
	next, ok := c.Continuation()
	if !ok || l.endpoint == "" {
		return Finding{}, false
	}
	finding := Finding{Path: "nextLink", Value: next, Severity: SeverityWarning}
	u, err := url.Parse(next)
	if err != nil || !u.IsAbs() {
		finding.Message = "continuation is not an absolute url"
		return finding, true
	}
	want, err := url.Parse(l.endpoint)
	if err != nil {
		return Finding{}, false
	}
	if !strings.EqualFold(u.Host, want.Host) || u.Scheme != "https" {
		finding.Message = fmt.Sprintf("continuation leaves the resource manager endpoint %s", l.endpoint)
		return finding, true
	}
	return Finding{}, false
}

type walker struct {
	enums    *openenum.Catalog
	ignore   []string
	findings []Finding
}

func (w *walker) walk(path string, v reflect.Value) {
	if !v.IsValid() {
		return
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return
		}
		w.walk(path, v.Elem())
	case reflect.String:
		w.check(path, v)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, ok := jsonName(f)
			if !ok {
				continue
			}
			w.walk(join(path, name), v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.walk(fmt.Sprintf("%s[%d]", path, i), v.Index(i))
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			w.walk(fmt.Sprintf("%s[%v]", path, k.Interface()), v.MapIndex(k))
		}
	}
}

func (w *walker) check(path string, v reflect.Value) {
	family, ok := w.enums.ForType(v.Type())
	if !ok || stringslice.Has(w.ignore, family.Name()) {
		return
	}
	wire := v.String()
	if family.IsKnown(wire) {
		return
	}
	f := Finding{
		Path:     path,
		Family:   family.Name(),
		Value:    wire,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("%q is not a known %s", wire, family.Name()),
	}
	if family.Closed() {
		f.Severity = SeverityError
		f.Message = fmt.Sprintf("%q is not a valid %s", wire, family.Name())
	}
	w.findings = append(w.findings, f)
}

// jsonName returns the wire name of a field. Embedded structs without a tag
// are flattened and report an empty name.
func jsonName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name := strings.Split(tag, ",")[0]
	if name == "" && !f.Anonymous {
		name = f.Name
	}
	return name, true
}

func join(path, name string) string {
	switch {
	case name == "":
		return path
	case path == "":
		return name
	}
	return path + "." + name
}
