/*
Copyright 2019 Alexander Eldeib.
*/

package documents

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/alexeldeib/azmodels/cmd/cmdutil"
	"github.com/alexeldeib/azmodels/pkg/decoder"
	"github.com/alexeldeib/azmodels/pkg/printer"
)

func NewRoundtripCommand(g *cmdutil.Globals) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Decode and re-encode documents, showing anything that changed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Roundtrip(g)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

// Roundtrip compares every typed document with its re-encoding and prints a
// unified diff of the canonical JSON for each one that changed.
func (opts *Options) Roundtrip(g *cmdutil.Globals) error {
	docs, decodeErr := opts.read(g)
	if decodeErr != nil {
		return decodeErr
	}

	changed := 0
	for _, doc := range docs {
		if _, ok := doc.Object.(*decoder.Unstructured); ok {
			fmt.Fprintf(g.Out, "document %d: %s is not registered, passed through\n", doc.Index, doc.Type)
			continue
		}

		diff, err := roundtrip(doc)
		if err != nil {
			return errors.Wrapf(err, "document %d", doc.Index)
		}
		if diff == "" {
			fmt.Fprintf(g.Out, "document %d: %s unchanged\n", doc.Index, doc.Kind)
			continue
		}
		changed++
		fmt.Fprintf(g.Out, "document %d: %s changed\n%s", doc.Index, doc.Kind, diff)
	}

	if changed > 0 {
		return errors.Errorf("%d of %d documents did not survive a round trip", changed, len(docs))
	}
	return nil
}

// roundtrip returns the unified diff between the document as written and as
// re-encoded from its model. The apiVersion field belongs to the document
// rather than the model, so it is not compared.
func roundtrip(doc *decoder.Document) (string, error) {
	before, err := printer.CanonicalObject(doc.Raw, "apiVersion")
	if err != nil {
		return "", err
	}
	encoded, err := json.Marshal(doc.Object)
	if err != nil {
		return "", errors.Wrap(err, "failed to re-encode")
	}
	after, err := printer.Canonical(encoded)
	if err != nil {
		return "", err
	}
	if string(before) == string(after) {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "input",
		ToFile:   doc.Kind,
		Context:  3,
	})
}
