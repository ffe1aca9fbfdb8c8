/*
Copyright 2019 Alexander Eldeib.
*/

package documents

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	sdk "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/cmd/cmdutil"
	"github.com/alexeldeib/azmodels/pkg/convert"
	"github.com/alexeldeib/azmodels/pkg/printer"
)

type ConvertOptions struct {
	Options
	Dump          string
	Request       bool
	Subscription  string
	ResourceGroup string
}

func NewConvertCommand(g *cmdutil.Globals) *cobra.Command {
	opts := &ConvertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert compute documents to Azure SDK models",
		Long: `Convert maps virtual machines, disks and scale sets onto the azure-sdk-for-go
2019-07-01 compute models and dumps them. With --request it prints the PUT
request the SDK client would send instead. Nothing is sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Convert(cmd.Context(), g)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.Dump, "dump", printer.DumpLitter, "Dump style, litter or spew")
	cmd.Flags().BoolVar(&opts.Request, "request", false, "Print the create or update request instead of dumping the model")
	cmd.Flags().StringVar(&opts.Subscription, "subscription", "00000000-0000-0000-0000-000000000000", "Subscription ID used in request URLs")
	cmd.Flags().StringVar(&opts.ResourceGroup, "resource-group", "default", "Resource group used in request URLs")
	return cmd
}

func (opts *ConvertOptions) Convert(ctx context.Context, g *cmdutil.Globals) error {
	if ctx == nil {
		ctx = context.Background()
	}
	docs, decodeErr := opts.read(g)
	if decodeErr != nil {
		return decodeErr
	}

	for _, doc := range docs {
		var (
			model any
			req   *http.Request
			err   error
		)
		switch obj := doc.Object.(type) {
		case *compute.VirtualMachine:
			remote := convert.VirtualMachineToSDK(obj)
			model = remote
			if opts.Request {
				client := sdk.NewVirtualMachinesClientWithBaseURI(opts.baseURI(g), opts.Subscription)
				if err := g.Config.ConfigureClient(&client.Client); err != nil {
					return err
				}
				req, err = client.CreateOrUpdatePreparer(ctx, opts.ResourceGroup, to.String(obj.Name), remote)
				if err == nil {
					setUserAgent(req, client.Client)
				}
			}
		case *compute.Disk:
			remote := convert.DiskToSDK(obj)
			model = remote
			if opts.Request {
				client := sdk.NewDisksClientWithBaseURI(opts.baseURI(g), opts.Subscription)
				if err := g.Config.ConfigureClient(&client.Client); err != nil {
					return err
				}
				req, err = client.CreateOrUpdatePreparer(ctx, opts.ResourceGroup, to.String(obj.Name), remote)
				if err == nil {
					setUserAgent(req, client.Client)
				}
			}
		case *compute.VirtualMachineScaleSet:
			remote := convert.VirtualMachineScaleSetToSDK(obj)
			model = remote
			if opts.Request {
				client := sdk.NewVirtualMachineScaleSetsClientWithBaseURI(opts.baseURI(g), opts.Subscription)
				if err := g.Config.ConfigureClient(&client.Client); err != nil {
					return err
				}
				req, err = client.CreateOrUpdatePreparer(ctx, opts.ResourceGroup, to.String(obj.Name), remote)
				if err == nil {
					setUserAgent(req, client.Client)
				}
			}
		default:
			g.Log.Info("skipping document with no SDK model", "index", doc.Index, "kind", doc.Kind, "type", doc.Type)
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to prepare request for document %d", doc.Index)
		}

		fmt.Fprintf(g.Out, "# document %d: %s\n", doc.Index, doc.Kind)
		if req != nil {
			if err := writeRequest(g.Out, req); err != nil {
				return errors.Wrapf(err, "document %d", doc.Index)
			}
			continue
		}
		if err := printer.Dump(g.Out, model, opts.Dump); err != nil {
			return err
		}
	}
	return nil
}

func (opts *ConvertOptions) baseURI(g *cmdutil.Globals) string {
	return strings.TrimSuffix(g.Config.Endpoint(), "/")
}

// setUserAgent applies the client's user agent the way autorest does when
// the request is sent.
func setUserAgent(req *http.Request, client autorest.Client) {
	if client.UserAgent != "" {
		req.Header.Set("User-Agent", client.UserAgent)
	}
}

func writeRequest(out io.Writer, req *http.Request) error {
	fmt.Fprintf(out, "%s %s\n", req.Method, req.URL.String())
	for _, name := range []string{"Content-Type", "User-Agent"} {
		if v := req.Header.Get(name); v != "" {
			fmt.Fprintf(out, "%s: %s\n", name, v)
		}
	}
	if req.Body == nil {
		return nil
	}
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read request body")
	}
	canonical, err := printer.Canonical(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s", canonical)
	return nil
}
