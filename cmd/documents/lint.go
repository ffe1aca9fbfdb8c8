/*
Copyright 2019 Alexander Eldeib.
*/

package documents

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alexeldeib/azmodels/cmd/cmdutil"
	"github.com/alexeldeib/azmodels/pkg/lint"
	"github.com/alexeldeib/azmodels/pkg/scheme"
)

type LintOptions struct {
	Options
	Ignore []string
}

func NewLintCommand(g *cmdutil.Globals) *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report enum values the models do not know",
		Long: `Lint reports every enum value that is not known to its family. Unknown values
of open families are warnings; unknown values of closed families are errors.
With --strict, warnings fail the command too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Lint(g)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringSliceVar(&opts.Ignore, "ignore", nil, "Enum families to skip, e.g. VirtualMachineSizeTypes")
	return cmd
}

func (opts *LintOptions) Lint(g *cmdutil.Globals) error {
	docs, decodeErr := opts.read(g)

	linter := lint.New(scheme.Registry,
		lint.Ignore(opts.Ignore...),
		lint.Endpoint(g.Config.Endpoint()),
		lint.WithLogger(g.Log.WithName("lint")),
	)

	var result *multierror.Error
	if decodeErr != nil {
		result = multierror.Append(result, decodeErr)
	}
	for _, doc := range docs {
		report := linter.LintDocument(doc)
		for _, f := range report.Findings {
			fmt.Fprintf(g.Out, "document %d: %s: %s\n", doc.Index, f.Severity, f.Error())
		}
		if err := report.Err(g.Config.Strict()); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "document %d", doc.Index))
		}
	}
	return result.ErrorOrNil()
}
