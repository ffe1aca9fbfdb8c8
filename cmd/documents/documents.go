/*
Copyright 2019 Alexander Eldeib.
*/

// Package documents implements the commands that read document streams.
package documents

import (
	"github.com/spf13/cobra"

	"github.com/alexeldeib/azmodels/cmd/cmdutil"
	"github.com/alexeldeib/azmodels/pkg/decoder"
	"github.com/alexeldeib/azmodels/pkg/scheme"
)

// Options are the flags shared by every document command.
type Options struct {
	File string
	Kind string
}

func (opts *Options) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "File containing one or more documents separated by ---, or - for stdin")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "Decode every document as this kind instead of dispatching on its type field")
	_ = cmd.MarkFlagRequired("file")
}

// read decodes every document of the input. Documents that fail to decode are
// logged and left out; their errors are returned together.
func (opts *Options) read(g *cmdutil.Globals) ([]*decoder.Document, error) {
	reader, err := cmdutil.Open(opts.File, g.In)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var decodeOpts []decoder.Option
	if opts.Kind != "" {
		decodeOpts = append(decodeOpts, decoder.As(opts.Kind))
	}
	if g.Config.Strict() {
		decodeOpts = append(decodeOpts, decoder.Strict())
	}

	docs, err := decoder.DecodeAll(reader, scheme.Registry, decodeOpts...)
	for _, doc := range docs {
		g.Log.V(1).Info("decoded document", "index", doc.Index, "kind", doc.Kind, "type", doc.Type, "apiVersion", doc.APIVersion)
	}
	if err != nil {
		g.Log.Error(err, "some documents could not be decoded", "file", opts.File)
	}
	return docs, err
}
