/*
Copyright 2019 Alexander Eldeib.
*/

// Package scaffold implements commands that emit starter documents.
package scaffold

import (
	"os"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/spf13/cobra"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/api/computeschedule"
	"github.com/alexeldeib/azmodels/cmd/cmdutil"
	"github.com/alexeldeib/azmodels/pkg/specs/vmspec"
	"github.com/alexeldeib/azmodels/pkg/stringutil"
)

func NewScaffoldCommand(g *cmdutil.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Emit starter documents",
	}
	cmd.AddCommand(NewVMCommand(g))
	cmd.AddCommand(NewScheduleCommand(g))
	return cmd
}

type VMOptions struct {
	Name       string
	Location   string
	Zone       string
	Size       string
	NICs       []string
	SSHKeyFile string
	DiskSizeGB int32
	Spot       bool
}

func NewVMCommand(g *cmdutil.Globals) *cobra.Command {
	opts := &VMOptions{}
	cmd := &cobra.Command{
		Use:   "vm",
		Short: "Emit a virtual machine document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Scaffold(g)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "VM name, random when empty")
	cmd.Flags().StringVar(&opts.Location, "location", "westus2", "Azure region")
	cmd.Flags().StringVar(&opts.Zone, "zone", "", "Availability zone")
	cmd.Flags().StringVar(&opts.Size, "size", string(compute.VirtualMachineSizeTypesStandardD2sV3), "VM size")
	cmd.Flags().StringSliceVar(&opts.NICs, "nic", nil, "Network interface IDs, primary first")
	cmd.Flags().StringVar(&opts.SSHKeyFile, "ssh-key-file", "", "Public key to authorize for the admin user")
	cmd.Flags().Int32Var(&opts.DiskSizeGB, "os-disk-size", vmspec.DefaultOSDiskSizeGB, "OS disk size in GB")
	cmd.Flags().BoolVar(&opts.Spot, "spot", false, "Request Spot priority with deallocate eviction")
	return cmd
}

func (opts *VMOptions) Scaffold(g *cmdutil.Globals) error {
	name := opts.Name
	if name == "" {
		name = "vm-" + stringutil.GenerateLowerCaseAlphaNumeric(8)
	}

	specOpts := []vmspec.Option{
		vmspec.Name(name),
		vmspec.Location(opts.Location),
		vmspec.Hostname(name),
		vmspec.Size(compute.VirtualMachineSizeTypes(opts.Size)),
		vmspec.OSDisk(opts.DiskSizeGB, compute.StorageAccountTypesPremiumLRS),
	}
	if opts.Zone != "" {
		specOpts = append(specOpts, vmspec.Zone(opts.Zone))
	}
	if len(opts.NICs) > 0 {
		specOpts = append(specOpts, vmspec.NICs(opts.NICs[0], opts.NICs[1:]...))
	}
	if opts.SSHKeyFile != "" {
		key, err := os.ReadFile(opts.SSHKeyFile)
		if err != nil {
			return errors.Wrap(err, "failed to read ssh key")
		}
		specOpts = append(specOpts, vmspec.SSHKey(string(key)))
	}
	if opts.Spot {
		specOpts = append(specOpts, vmspec.Priority(compute.VirtualMachinePriorityTypesSpot, compute.VirtualMachineEvictionPolicyTypesDeallocate))
	}

	spec, err := vmspec.New(specOpts...)
	if err != nil {
		return err
	}
	vm := spec.Build()
	g.Log.V(1).Info("built vm", "name", name, "size", opts.Size)
	return g.Printer().Print(&vm)
}

type ScheduleOptions struct {
	Action        string
	Resources     []string
	Deadline      string
	TimeZone      string
	Execute       bool
	CorrelationID string
	RetryCount    int32
}

func NewScheduleCommand(g *cmdutil.Globals) *cobra.Command {
	opts := &ScheduleOptions{}
	cmd := &cobra.Command{
		Use:       "schedule start|deallocate|hibernate",
		Short:     "Emit a scheduled action request",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"start", "deallocate", "hibernate"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Action = args[0]
			return opts.Scaffold(g, time.Now())
		},
	}
	cmd.Flags().StringSliceVar(&opts.Resources, "resource", nil, "Virtual machine resource IDs")
	cmd.Flags().StringVar(&opts.Deadline, "deadline", "", "RFC 3339 deadline, one hour from now when empty")
	cmd.Flags().StringVar(&opts.TimeZone, "timezone", "UTC", "Time zone of the deadline")
	cmd.Flags().BoolVar(&opts.Execute, "execute", false, "Emit an immediate execute request instead of a submit request")
	cmd.Flags().StringVar(&opts.CorrelationID, "correlation-id", "", "Correlation ID, a new UUID when empty")
	cmd.Flags().Int32Var(&opts.RetryCount, "retry-count", 0, "Retry count, unset when zero")
	return cmd
}

// Scaffold prints the request for opts. now anchors the default deadline.
func (opts *ScheduleOptions) Scaffold(g *cmdutil.Globals, now time.Time) error {
	req, err := opts.Build(now)
	if err != nil {
		return err
	}
	return g.Printer().Print(req)
}

// Build returns the submit or execute request for the configured action.
func (opts *ScheduleOptions) Build(now time.Time) (any, error) {
	if len(opts.Resources) == 0 {
		return nil, errors.New("at least one --resource is required")
	}
	correlationID := opts.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewV4().String()
	}

	deadline := now.UTC().Add(time.Hour).Truncate(time.Second)
	if opts.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, opts.Deadline)
		if err != nil {
			return nil, errors.Wrap(err, "invalid deadline")
		}
		deadline = parsed
	}

	params := &computeschedule.ExecutionParameters{}
	if opts.RetryCount > 0 {
		count := opts.RetryCount
		params.RetryPolicy = &computeschedule.RetryPolicy{RetryCount: &count}
	}
	resources := computeschedule.NewResources(opts.Resources...)
	schedule := computeschedule.NewSchedule(date.Time{Time: deadline}, opts.TimeZone, computeschedule.DeadlineTypeInitiateAt)

	switch strings.ToLower(opts.Action) {
	case "start":
		if opts.Execute {
			return computeschedule.NewExecuteStartRequest(params, resources, correlationID), nil
		}
		return computeschedule.NewSubmitStartRequest(schedule, params, resources, correlationID), nil
	case "deallocate":
		if opts.Execute {
			return computeschedule.NewExecuteDeallocateRequest(params, resources, correlationID), nil
		}
		return computeschedule.NewSubmitDeallocateRequest(schedule, params, resources, correlationID), nil
	case "hibernate":
		if opts.Execute {
			return computeschedule.NewExecuteHibernateRequest(params, resources, correlationID), nil
		}
		return computeschedule.NewSubmitHibernateRequest(schedule, params, resources, correlationID), nil
	default:
		return nil, errors.Errorf("unknown action %q, expected start, deallocate or hibernate", opts.Action)
	}
}
