package convert

import (
	sdk "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"

	"github.com/alexeldeib/azmodels/api/compute"
)

// VirtualMachineScaleSetToSDK converts a scale set for use with the SDK client.
// A nil scale set converts to the zero model.
func VirtualMachineScaleSetToSDK(local *compute.VirtualMachineScaleSet) sdk.VirtualMachineScaleSet {
	if local == nil {
		return sdk.VirtualMachineScaleSet{}
	}
	remote := sdk.VirtualMachineScaleSet{
		ID:       local.ID,
		Name:     local.Name,
		Type:     local.Type,
		Location: local.Location,
		Tags:     copyTags(local.Tags),
		Zones:    stringsTo(local.Zones),
		Plan:     planTo(local.Plan),
	}
	if local.SKU != nil {
		remote.Sku = &sdk.Sku{Name: local.SKU.Name, Tier: local.SKU.Tier, Capacity: local.SKU.Capacity}
	}
	if id := identityTo(local.Identity); id != nil {
		remote.Identity = &sdk.VirtualMachineScaleSetIdentity{
			PrincipalID: id.PrincipalID,
			TenantID:    id.TenantID,
			Type:        id.Type,
		}
		if id.UserAssignedIdentities != nil {
			remote.Identity.UserAssignedIdentities = map[string]*sdk.VirtualMachineScaleSetIdentityUserAssignedIdentitiesValue{}
			for k, v := range id.UserAssignedIdentities {
				if v == nil {
					remote.Identity.UserAssignedIdentities[k] = nil
					continue
				}
				remote.Identity.UserAssignedIdentities[k] = &sdk.VirtualMachineScaleSetIdentityUserAssignedIdentitiesValue{
					ClientID:    v.ClientID,
					PrincipalID: v.PrincipalID,
				}
			}
		}
	}
	if p := local.Properties; p != nil {
		remote.VirtualMachineScaleSetProperties = &sdk.VirtualMachineScaleSetProperties{
			Overprovision:            p.Overprovision,
			PlatformFaultDomainCount: p.PlatformFaultDomainCount,
			SinglePlacementGroup:     p.SinglePlacementGroup,
			ZoneBalance:              p.ZoneBalance,
			ProvisioningState:        p.ProvisioningState,
			UniqueID:                 p.UniqueID,
			UpgradePolicy:            upgradePolicyTo(p.UpgradePolicy),
			VirtualMachineProfile:    vmProfileTo(p.VirtualMachineProfile),
		}
	}
	return remote
}

// VirtualMachineScaleSetFromSDK converts a scale set returned by the SDK client.
// It returns nil for nil.
func VirtualMachineScaleSetFromSDK(remote *sdk.VirtualMachineScaleSet) *compute.VirtualMachineScaleSet {
	if remote == nil {
		return nil
	}
	local := &compute.VirtualMachineScaleSet{
		ID:       remote.ID,
		Name:     remote.Name,
		Type:     remote.Type,
		Location: remote.Location,
		Tags:     copyTags(remote.Tags),
		Zones:    stringsFrom(remote.Zones),
		Plan:     planFrom(remote.Plan),
	}
	if remote.Sku != nil {
		local.SKU = &compute.SKU{Name: remote.Sku.Name, Tier: remote.Sku.Tier, Capacity: remote.Sku.Capacity}
	}
	if id := remote.Identity; id != nil {
		local.Identity = &compute.VirtualMachineIdentity{
			PrincipalID: id.PrincipalID,
			TenantID:    id.TenantID,
			Type:        enumFrom[compute.ResourceIdentityType](id.Type),
		}
		if id.UserAssignedIdentities != nil {
			local.Identity.UserAssignedIdentities = map[string]*compute.UserAssignedIdentitiesValue{}
			for k, v := range id.UserAssignedIdentities {
				if v == nil {
					local.Identity.UserAssignedIdentities[k] = nil
					continue
				}
				local.Identity.UserAssignedIdentities[k] = &compute.UserAssignedIdentitiesValue{
					ClientID:    v.ClientID,
					PrincipalID: v.PrincipalID,
				}
			}
		}
	}
	if p := remote.VirtualMachineScaleSetProperties; p != nil {
		local.Properties = &compute.VirtualMachineScaleSetProperties{
			Overprovision:            p.Overprovision,
			PlatformFaultDomainCount: p.PlatformFaultDomainCount,
			SinglePlacementGroup:     p.SinglePlacementGroup,
			ZoneBalance:              p.ZoneBalance,
			ProvisioningState:        p.ProvisioningState,
			UniqueID:                 p.UniqueID,
			UpgradePolicy:            upgradePolicyFrom(p.UpgradePolicy),
			VirtualMachineProfile:    vmProfileFrom(p.VirtualMachineProfile),
		}
	}
	return local
}

func upgradePolicyTo(in *compute.UpgradePolicy) *sdk.UpgradePolicy {
	if in == nil {
		return nil
	}
	out := &sdk.UpgradePolicy{Mode: enumTo[sdk.UpgradeMode](in.Mode)}
	if a := in.AutomaticOSUpgradePolicy; a != nil {
		out.AutomaticOSUpgradePolicy = &sdk.AutomaticOSUpgradePolicy{
			EnableAutomaticOSUpgrade: a.EnableAutomaticOSUpgrade,
			DisableAutomaticRollback: a.DisableAutomaticRollback,
		}
	}
	if r := in.RollingUpgradePolicy; r != nil {
		out.RollingUpgradePolicy = &sdk.RollingUpgradePolicy{
			MaxBatchInstancePercent:     r.MaxBatchInstancePercent,
			MaxUnhealthyInstancePercent: r.MaxUnhealthyInstancePercent,
			PauseTimeBetweenBatches:     r.PauseTimeBetweenBatches,
		}
	}
	return out
}

func upgradePolicyFrom(in *sdk.UpgradePolicy) *compute.UpgradePolicy {
	if in == nil {
		return nil
	}
	out := &compute.UpgradePolicy{Mode: enumFrom[compute.UpgradeMode](in.Mode)}
	if a := in.AutomaticOSUpgradePolicy; a != nil {
		out.AutomaticOSUpgradePolicy = &compute.AutomaticOSUpgradePolicy{
			EnableAutomaticOSUpgrade: a.EnableAutomaticOSUpgrade,
			DisableAutomaticRollback: a.DisableAutomaticRollback,
		}
	}
	if r := in.RollingUpgradePolicy; r != nil {
		out.RollingUpgradePolicy = &compute.RollingUpgradePolicy{
			MaxBatchInstancePercent:     r.MaxBatchInstancePercent,
			MaxUnhealthyInstancePercent: r.MaxUnhealthyInstancePercent,
			PauseTimeBetweenBatches:     r.PauseTimeBetweenBatches,
		}
	}
	return out
}

func vmProfileTo(in *compute.VirtualMachineScaleSetVMProfile) *sdk.VirtualMachineScaleSetVMProfile {
	if in == nil {
		return nil
	}
	out := &sdk.VirtualMachineScaleSetVMProfile{
		EvictionPolicy: enumTo[sdk.VirtualMachineEvictionPolicyTypes](in.EvictionPolicy),
		Priority:       enumTo[sdk.VirtualMachinePriorityTypes](in.Priority),
		LicenseType:    in.LicenseType,
	}
	if o := in.OSProfile; o != nil {
		out.OsProfile = &sdk.VirtualMachineScaleSetOSProfile{
			ComputerNamePrefix:   o.ComputerNamePrefix,
			AdminUsername:        o.AdminUsername,
			AdminPassword:        o.AdminPassword,
			CustomData:           o.CustomData,
			LinuxConfiguration:   linuxTo(o.LinuxConfiguration),
			WindowsConfiguration: windowsTo(o.WindowsConfiguration),
		}
	}
	if s := in.StorageProfile; s != nil {
		out.StorageProfile = &sdk.VirtualMachineScaleSetStorageProfile{
			ImageReference: imageReferenceTo(s.ImageReference),
			DataDisks: sliceTo(s.DataDisks, func(d *compute.DataDisk) sdk.VirtualMachineScaleSetDataDisk {
				return sdk.VirtualMachineScaleSetDataDisk{
					Lun:                     d.Lun,
					Name:                    d.Name,
					Caching:                 enumTo[sdk.CachingTypes](d.Caching),
					CreateOption:            enumTo[sdk.DiskCreateOptionTypes](d.CreateOption),
					DiskSizeGB:              d.DiskSizeGB,
					ManagedDisk:             scaleSetManagedDiskTo(d.ManagedDisk),
					WriteAcceleratorEnabled: d.WriteAcceleratorEnabled,
				}
			}),
		}
		if d := s.OSDisk; d != nil {
			out.StorageProfile.OsDisk = &sdk.VirtualMachineScaleSetOSDisk{
				OsType:                  enumTo[sdk.OperatingSystemTypes](d.OSType),
				Name:                    d.Name,
				Caching:                 enumTo[sdk.CachingTypes](d.Caching),
				CreateOption:            enumTo[sdk.DiskCreateOptionTypes](d.CreateOption),
				DiskSizeGB:              d.DiskSizeGB,
				ManagedDisk:             scaleSetManagedDiskTo(d.ManagedDisk),
				WriteAcceleratorEnabled: d.WriteAcceleratorEnabled,
			}
		}
	}
	return out
}

func vmProfileFrom(in *sdk.VirtualMachineScaleSetVMProfile) *compute.VirtualMachineScaleSetVMProfile {
	if in == nil {
		return nil
	}
	out := &compute.VirtualMachineScaleSetVMProfile{
		EvictionPolicy: enumFrom[compute.VirtualMachineEvictionPolicyTypes](in.EvictionPolicy),
		Priority:       enumFrom[compute.VirtualMachinePriorityTypes](in.Priority),
		LicenseType:    in.LicenseType,
	}
	if o := in.OsProfile; o != nil {
		out.OSProfile = &compute.VirtualMachineScaleSetOSProfile{
			ComputerNamePrefix:   o.ComputerNamePrefix,
			AdminUsername:        o.AdminUsername,
			AdminPassword:        o.AdminPassword,
			CustomData:           o.CustomData,
			LinuxConfiguration:   linuxFrom(o.LinuxConfiguration),
			WindowsConfiguration: windowsFrom(o.WindowsConfiguration),
		}
	}
	if s := in.StorageProfile; s != nil {
		out.StorageProfile = &compute.StorageProfile{
			ImageReference: imageReferenceFrom(s.ImageReference),
			DataDisks: sliceFrom(s.DataDisks, func(d *sdk.VirtualMachineScaleSetDataDisk) *compute.DataDisk {
				return &compute.DataDisk{
					Lun:                     d.Lun,
					Name:                    d.Name,
					Caching:                 enumFrom[compute.CachingTypes](d.Caching),
					CreateOption:            enumFrom[compute.DiskCreateOptionTypes](d.CreateOption),
					DiskSizeGB:              d.DiskSizeGB,
					ManagedDisk:             scaleSetManagedDiskFrom(d.ManagedDisk),
					WriteAcceleratorEnabled: d.WriteAcceleratorEnabled,
				}
			}),
		}
		if d := s.OsDisk; d != nil {
			out.StorageProfile.OSDisk = &compute.OSDisk{
				OSType:                  enumFrom[compute.OperatingSystemTypes](d.OsType),
				Name:                    d.Name,
				Caching:                 enumFrom[compute.CachingTypes](d.Caching),
				CreateOption:            enumFrom[compute.DiskCreateOptionTypes](d.CreateOption),
				DiskSizeGB:              d.DiskSizeGB,
				ManagedDisk:             scaleSetManagedDiskFrom(d.ManagedDisk),
				WriteAcceleratorEnabled: d.WriteAcceleratorEnabled,
			}
		}
	}
	return out
}

// Scale set disks have no resource id of their own.
func scaleSetManagedDiskTo(in *compute.ManagedDiskParameters) *sdk.VirtualMachineScaleSetManagedDiskParameters {
	if in == nil {
		return nil
	}
	return &sdk.VirtualMachineScaleSetManagedDiskParameters{
		StorageAccountType: enumTo[sdk.StorageAccountTypes](in.StorageAccountType),
	}
}

func scaleSetManagedDiskFrom(in *sdk.VirtualMachineScaleSetManagedDiskParameters) *compute.ManagedDiskParameters {
	if in == nil {
		return nil
	}
	return &compute.ManagedDiskParameters{
		StorageAccountType: enumFrom[compute.StorageAccountTypes](in.StorageAccountType),
	}
}
