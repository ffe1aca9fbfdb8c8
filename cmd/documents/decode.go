/*
Copyright 2019 Alexander Eldeib.
*/

package documents

import (
	"github.com/spf13/cobra"

	"github.com/alexeldeib/azmodels/cmd/cmdutil"
)

func NewDecodeCommand(g *cmdutil.Globals) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode documents into typed models and print them",
		Long: `Decode reads a stream of YAML or JSON documents, decodes each one into the
model registered for its type and prints the result. Enum values the models
do not know are kept verbatim. Documents of unregistered types pass through
unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Decode(g)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

// Decode prints every document that decoded, then returns any decode errors.
func (opts *Options) Decode(g *cmdutil.Globals) error {
	docs, decodeErr := opts.read(g)
	p := g.Printer()
	for _, doc := range docs {
		if err := p.Print(doc.Object); err != nil {
			return err
		}
	}
	return decodeErr
}
