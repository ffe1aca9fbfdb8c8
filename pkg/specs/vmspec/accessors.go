/*
Copyright 2019 Alexander Eldeib.
*/

package vmspec

import (
	"strings"

	"github.com/Azure/go-autorest/autorest/to"

	"github.com/alexeldeib/azmodels/api/compute"
)

// NeedsUpdate reports whether observed differs from desired in a field that
// can be changed in place. Sizes are compared exactly, without case folding.
func NeedsUpdate(desired, observed *compute.VirtualMachine) bool {
	want, got := NewFromExisting(desired), NewFromExisting(observed)
	return anyOf([]func() bool{
		func() bool { return to.String(GetName(want)) != to.String(GetName(got)) },
		func() bool { return GetSize(want) != nil && (GetSize(got) == nil || *GetSize(want) != *GetSize(got)) },
		func() bool { return tagsDiffer(desired.Tags, observed.Tags) },
		// Location and zone are immutable.
	})
}

// GetName returns the resource name.
func GetName(s *Spec) *string {
	return s.internal.Name
}

// GetLocation returns the region.
func GetLocation(s *Spec) *string {
	return s.internal.Location
}

// GetZone returns the zone. A VM can only have one.
func GetZone(s *Spec) *string {
	if len(s.internal.Zones) > 0 {
		return s.internal.Zones[0]
	}
	return nil
}

// GetID returns the resource id assigned by Azure.
func GetID(s *Spec) *string {
	return s.internal.ID
}

// GetState returns the provisioning state.
func GetState(s *Spec) *string {
	if s.internal.Properties == nil {
		return nil
	}
	return s.internal.Properties.ProvisioningState
}

// GetSize returns the VM size.
func GetSize(s *Spec) *compute.VirtualMachineSizeTypes {
	if s.internal.Properties == nil || s.internal.Properties.HardwareProfile == nil {
		return nil
	}
	return s.internal.Properties.HardwareProfile.VMSize
}

// GetPowerState returns the power state from the instance view, such as
// "running" or "deallocated", or "" when the instance view was not requested.
func GetPowerState(s *Spec) string {
	if s.internal.Properties == nil || s.internal.Properties.InstanceView == nil {
		return ""
	}
	for _, status := range s.internal.Properties.InstanceView.Statuses {
		if status == nil {
			continue
		}
		if code := to.String(status.Code); strings.HasPrefix(code, powerState) {
			return strings.TrimPrefix(code, powerState)
		}
	}
	return ""
}

func tagsDiffer(desired, observed map[string]*string) bool {
	for k, v := range desired {
		got, ok := observed[k]
		if !ok || to.String(v) != to.String(got) {
			return true
		}
	}
	return false
}

func anyOf(funcs []func() bool) bool {
	for _, f := range funcs {
		if f() {
			return true
		}
	}
	return false
}

// initialize takes equal-length arrays of detector and remediator functions.
// If a given detector returns true, initialize calls the corresponding remediator.
func (s *Spec) initialize(detectors []func() bool, remediators []func()) {
	for idx, f := range detectors {
		if f() {
			remediators[idx]()
		}
	}
}

func (s *Spec) checkProperties() bool {
	return s.internal.Properties == nil
}
func (s *Spec) initProperties() {
	s.internal.Properties = &compute.VirtualMachineProperties{}
}

func (s *Spec) checkHardwareProfile() bool {
	return s.internal.Properties.HardwareProfile == nil
}
func (s *Spec) initHardwareProfile() {
	s.internal.Properties.HardwareProfile = &compute.HardwareProfile{}
}

func (s *Spec) checkNetworkProfile() bool {
	return s.internal.Properties.NetworkProfile == nil
}
func (s *Spec) initNetworkProfile() {
	s.internal.Properties.NetworkProfile = &compute.NetworkProfile{}
}

func (s *Spec) checkOSProfile() bool {
	return s.internal.Properties.OSProfile == nil
}
func (s *Spec) initOSProfile() {
	s.internal.Properties.OSProfile = &compute.OSProfile{}
}

func (s *Spec) checkLinuxConfiguration() bool {
	return s.internal.Properties.OSProfile.LinuxConfiguration == nil
}
func (s *Spec) initLinuxConfiguration() {
	s.internal.Properties.OSProfile.LinuxConfiguration = &compute.LinuxConfiguration{}
}

func (s *Spec) checkStorageProfile() bool {
	return s.internal.Properties.StorageProfile == nil
}
func (s *Spec) initStorageProfile() {
	s.internal.Properties.StorageProfile = &compute.StorageProfile{}
}

func (s *Spec) checkOSDisk() bool {
	return s.internal.Properties.StorageProfile.OSDisk == nil
}
func (s *Spec) initOSDisk() {
	s.internal.Properties.StorageProfile.OSDisk = &compute.OSDisk{}
}
