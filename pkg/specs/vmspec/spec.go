/*
Copyright 2019 Alexander Eldeib.
*/

// Package vmspec builds virtual machine documents with sensible defaults.
package vmspec

import (
	"fmt"
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/pkg/errors"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/pkg/stringutil"
)

const (
	// DefaultUsername is the admin account created on new machines.
	DefaultUsername = "azureuser"
	// DefaultOSDiskSizeGB is the OS disk size used when none is requested.
	DefaultOSDiskSizeGB = 100

	resourceType = "Microsoft.Compute/virtualMachines"
	powerState   = "PowerState/"
)

// Option mutates a Spec under construction.
type Option func(*Spec)

// Spec wraps a virtual machine document while it is being built.
type Spec struct {
	internal *compute.VirtualMachine
}

// New returns a Linux virtual machine on the latest Ubuntu LTS image with a
// random admin password, then applies opts in order.
func New(opts ...Option) (*Spec, error) {
	password, err := stringutil.GenerateRandomBytes(32)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin password")
	}
	s := &Spec{
		internal: &compute.VirtualMachine{
			Type: to.StringPtr(resourceType),
			Properties: &compute.VirtualMachineProperties{
				HardwareProfile: &compute.HardwareProfile{},
				StorageProfile: &compute.StorageProfile{
					ImageReference: &compute.ImageReference{
						Publisher: to.StringPtr("Canonical"),
						Offer:     to.StringPtr("0001-com-ubuntu-server-jammy"),
						SKU:       to.StringPtr("22_04-lts-gen2"),
						Version:   to.StringPtr("latest"),
					},
					OSDisk: &compute.OSDisk{
						OSType:       ptr(compute.OperatingSystemTypesLinux),
						CreateOption: ptr(compute.DiskCreateOptionTypesFromImage),
						DiskSizeGB:   to.Int32Ptr(DefaultOSDiskSizeGB),
					},
				},
				NetworkProfile: &compute.NetworkProfile{},
				OSProfile: &compute.OSProfile{
					AdminUsername: to.StringPtr(DefaultUsername),
					AdminPassword: to.StringPtr(password),
					LinuxConfiguration: &compute.LinuxConfiguration{
						DisablePasswordAuthentication: to.BoolPtr(false),
						SSH:                           &compute.SSHConfiguration{},
					},
				},
			},
		},
	}
	s.Apply(opts...)
	return s, nil
}

// NewFromExisting wraps an observed virtual machine.
func NewFromExisting(remote *compute.VirtualMachine) *Spec {
	return &Spec{
		internal: remote,
	}
}

// Apply runs opts against the spec in order.
func (s *Spec) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(s)
	}
}

// Build returns the virtual machine. The result shares nested values with the spec.
func (s *Spec) Build() compute.VirtualMachine {
	return *s.internal
}

// Name sets the resource name.
func Name(name string) Option {
	return func(s *Spec) {
		s.internal.Name = &name
	}
}

// Location sets the Azure region.
func Location(location string) Option {
	return func(s *Spec) {
		s.internal.Location = &location
	}
}

// Zone pins the VM to a single availability zone.
func Zone(zone string) Option {
	return func(s *Spec) {
		s.internal.Zones = []*string{&zone}
	}
}

// Tag sets one resource tag.
func Tag(key, value string) Option {
	return func(s *Spec) {
		if s.internal.Tags == nil {
			s.internal.Tags = map[string]*string{}
		}
		s.internal.Tags[key] = &value
	}
}

// Size sets the VM size. Sizes newer than the known set pass through unchanged.
func Size(size compute.VirtualMachineSizeTypes) Option {
	return func(s *Spec) {
		s.initialize(
			[]func() bool{
				s.checkProperties,
				s.checkHardwareProfile,
			},
			[]func(){
				s.initProperties,
				s.initHardwareProfile,
			},
		)
		s.internal.Properties.HardwareProfile.VMSize = &size
	}
}

// Hostname sets the computer name inside the guest.
func Hostname(hostname string) Option {
	return func(s *Spec) {
		s.initialize(
			[]func() bool{
				s.checkProperties,
				s.checkOSProfile,
			},
			[]func(){
				s.initProperties,
				s.initOSProfile,
			},
		)
		s.internal.Properties.OSProfile.ComputerName = &hostname
	}
}

// NICs attaches the primary network interface followed by any secondaries,
// replacing whatever was attached before.
func NICs(primary string, secondary ...string) Option {
	return func(s *Spec) {
		s.initialize(
			[]func() bool{
				s.checkProperties,
				s.checkNetworkProfile,
			},
			[]func(){
				s.initProperties,
				s.initNetworkProfile,
			},
		)
		nics := []*compute.NetworkInterfaceReference{nicReference(primary, true)}
		for _, id := range secondary {
			nics = append(nics, nicReference(id, false))
		}
		s.internal.Properties.NetworkProfile.NetworkInterfaces = nics
	}
}

// OSDisk sets the OS disk size and storage type.
func OSDisk(sizeGB int32, storage compute.StorageAccountTypes) Option {
	return func(s *Spec) {
		s.initialize(
			[]func() bool{
				s.checkProperties,
				s.checkStorageProfile,
				s.checkOSDisk,
			},
			[]func(){
				s.initProperties,
				s.initStorageProfile,
				s.initOSDisk,
			},
		)
		disk := s.internal.Properties.StorageProfile.OSDisk
		disk.DiskSizeGB = &sizeGB
		disk.ManagedDisk = &compute.ManagedDiskParameters{StorageAccountType: &storage}
	}
}

// Image selects a marketplace image.
func Image(publisher, offer, sku, version string) Option {
	return func(s *Spec) {
		s.initialize(
			[]func() bool{
				s.checkProperties,
				s.checkStorageProfile,
			},
			[]func(){
				s.initProperties,
				s.initStorageProfile,
			},
		)
		s.internal.Properties.StorageProfile.ImageReference = &compute.ImageReference{
			Publisher: &publisher,
			Offer:     &offer,
			SKU:       &sku,
			Version:   &version,
		}
	}
}

// SSHKey authorizes key for the admin user and disables password login.
func SSHKey(key string) Option {
	return func(s *Spec) {
		s.initialize(
			[]func() bool{
				s.checkProperties,
				s.checkOSProfile,
				s.checkLinuxConfiguration,
			},
			[]func(){
				s.initProperties,
				s.initOSProfile,
				s.initLinuxConfiguration,
			},
		)
		profile := s.internal.Properties.OSProfile
		user := to.String(profile.AdminUsername)
		if user == "" {
			user = DefaultUsername
			profile.AdminUsername = to.StringPtr(user)
		}
		linux := profile.LinuxConfiguration
		if linux.SSH == nil {
			linux.SSH = &compute.SSHConfiguration{}
		}
		linux.SSH.PublicKeys = append(linux.SSH.PublicKeys, &compute.SSHPublicKey{
			Path:    to.StringPtr(fmt.Sprintf("/home/%s/.ssh/authorized_keys", user)),
			KeyData: to.StringPtr(strings.TrimSpace(key)),
		})
		linux.DisablePasswordAuthentication = to.BoolPtr(true)
		profile.AdminPassword = nil
	}
}

// Priority sets the scheduling priority. Eviction policy only applies to Spot
// machines, so an empty eviction leaves it unset.
func Priority(priority compute.VirtualMachinePriorityTypes, eviction compute.VirtualMachineEvictionPolicyTypes) Option {
	return func(s *Spec) {
		s.initialize(
			[]func() bool{s.checkProperties},
			[]func(){s.initProperties},
		)
		s.internal.Properties.Priority = &priority
		s.internal.Properties.EvictionPolicy = nil
		if eviction != "" {
			s.internal.Properties.EvictionPolicy = &eviction
		}
	}
}

func nicReference(id string, primary bool) *compute.NetworkInterfaceReference {
	return &compute.NetworkInterfaceReference{
		ID: &id,
		Properties: &compute.NetworkInterfaceReferenceProperties{
			Primary: to.BoolPtr(primary),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
