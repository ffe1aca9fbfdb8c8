package convert

import (
	sdk "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"

	"github.com/alexeldeib/azmodels/api/compute"
)

// VirtualMachineToSDK converts a virtual machine for use with the SDK client.
// A nil virtual machine converts to the zero model.
func VirtualMachineToSDK(local *compute.VirtualMachine) sdk.VirtualMachine {
	if local == nil {
		return sdk.VirtualMachine{}
	}
	remote := sdk.VirtualMachine{
		ID:       local.ID,
		Name:     local.Name,
		Type:     local.Type,
		Location: local.Location,
		Tags:     copyTags(local.Tags),
		Zones:    stringsTo(local.Zones),
		Plan:     planTo(local.Plan),
		Identity: identityTo(local.Identity),
	}
	if p := local.Properties; p != nil {
		remote.VirtualMachineProperties = &sdk.VirtualMachineProperties{
			AvailabilitySet:        subResourceTo(p.AvailabilitySet),
			VirtualMachineScaleSet: subResourceTo(p.VirtualMachineScaleSet),
			DiagnosticsProfile:     diagnosticsTo(p.DiagnosticsProfile),
			EvictionPolicy:         enumTo[sdk.VirtualMachineEvictionPolicyTypes](p.EvictionPolicy),
			Priority:               enumTo[sdk.VirtualMachinePriorityTypes](p.Priority),
			LicenseType:            p.LicenseType,
			OsProfile:              osProfileTo(p.OSProfile),
			StorageProfile:         storageProfileTo(p.StorageProfile),
			NetworkProfile:         networkProfileTo(p.NetworkProfile),
			ProvisioningState:      p.ProvisioningState,
			VMID:                   p.VMID,
		}
		if p.HardwareProfile != nil {
			remote.VirtualMachineProperties.HardwareProfile = &sdk.HardwareProfile{
				VMSize: enumTo[sdk.VirtualMachineSizeTypes](p.HardwareProfile.VMSize),
			}
		}
	}
	return remote
}

// VirtualMachineFromSDK converts a virtual machine returned by the SDK client.
// It returns nil for nil.
func VirtualMachineFromSDK(remote *sdk.VirtualMachine) *compute.VirtualMachine {
	if remote == nil {
		return nil
	}
	local := &compute.VirtualMachine{
		ID:       remote.ID,
		Name:     remote.Name,
		Type:     remote.Type,
		Location: remote.Location,
		Tags:     copyTags(remote.Tags),
		Zones:    stringsFrom(remote.Zones),
		Plan:     planFrom(remote.Plan),
		Identity: identityFrom(remote.Identity),
	}
	if p := remote.VirtualMachineProperties; p != nil {
		local.Properties = &compute.VirtualMachineProperties{
			AvailabilitySet:        subResourceFrom(p.AvailabilitySet),
			VirtualMachineScaleSet: subResourceFrom(p.VirtualMachineScaleSet),
			DiagnosticsProfile:     diagnosticsFrom(p.DiagnosticsProfile),
			EvictionPolicy:         enumFrom[compute.VirtualMachineEvictionPolicyTypes](p.EvictionPolicy),
			Priority:               enumFrom[compute.VirtualMachinePriorityTypes](p.Priority),
			LicenseType:            p.LicenseType,
			OSProfile:              osProfileFrom(p.OsProfile),
			StorageProfile:         storageProfileFrom(p.StorageProfile),
			NetworkProfile:         networkProfileFrom(p.NetworkProfile),
			InstanceView:           instanceViewFrom(p.InstanceView),
			ProvisioningState:      p.ProvisioningState,
			VMID:                   p.VMID,
		}
		if p.HardwareProfile != nil {
			local.Properties.HardwareProfile = &compute.HardwareProfile{
				VMSize: enumFrom[compute.VirtualMachineSizeTypes](p.HardwareProfile.VMSize),
			}
		}
	}
	return local
}

func planTo(in *compute.Plan) *sdk.Plan {
	if in == nil {
		return nil
	}
	return &sdk.Plan{Name: in.Name, Publisher: in.Publisher, Product: in.Product, PromotionCode: in.PromotionCode}
}

func planFrom(in *sdk.Plan) *compute.Plan {
	if in == nil {
		return nil
	}
	return &compute.Plan{Name: in.Name, Publisher: in.Publisher, Product: in.Product, PromotionCode: in.PromotionCode}
}

func subResourceTo(in *compute.SubResource) *sdk.SubResource {
	if in == nil {
		return nil
	}
	return &sdk.SubResource{ID: in.ID}
}

func subResourceFrom(in *sdk.SubResource) *compute.SubResource {
	if in == nil {
		return nil
	}
	return &compute.SubResource{ID: in.ID}
}

func identityTo(in *compute.VirtualMachineIdentity) *sdk.VirtualMachineIdentity {
	if in == nil {
		return nil
	}
	out := &sdk.VirtualMachineIdentity{
		PrincipalID: in.PrincipalID,
		TenantID:    in.TenantID,
		Type:        enumTo[sdk.ResourceIdentityType](in.Type),
	}
	if in.UserAssignedIdentities != nil {
		out.UserAssignedIdentities = map[string]*sdk.VirtualMachineIdentityUserAssignedIdentitiesValue{}
		for k, v := range in.UserAssignedIdentities {
			if v == nil {
				out.UserAssignedIdentities[k] = nil
				continue
			}
			out.UserAssignedIdentities[k] = &sdk.VirtualMachineIdentityUserAssignedIdentitiesValue{
				ClientID:    v.ClientID,
				PrincipalID: v.PrincipalID,
			}
		}
	}
	return out
}

func identityFrom(in *sdk.VirtualMachineIdentity) *compute.VirtualMachineIdentity {
	if in == nil {
		return nil
	}
	out := &compute.VirtualMachineIdentity{
		PrincipalID: in.PrincipalID,
		TenantID:    in.TenantID,
		Type:        enumFrom[compute.ResourceIdentityType](in.Type),
	}
	if in.UserAssignedIdentities != nil {
		out.UserAssignedIdentities = map[string]*compute.UserAssignedIdentitiesValue{}
		for k, v := range in.UserAssignedIdentities {
			if v == nil {
				out.UserAssignedIdentities[k] = nil
				continue
			}
			out.UserAssignedIdentities[k] = &compute.UserAssignedIdentitiesValue{
				ClientID:    v.ClientID,
				PrincipalID: v.PrincipalID,
			}
		}
	}
	return out
}

func diagnosticsTo(in *compute.DiagnosticsProfile) *sdk.DiagnosticsProfile {
	if in == nil {
		return nil
	}
	out := &sdk.DiagnosticsProfile{}
	if b := in.BootDiagnostics; b != nil {
		out.BootDiagnostics = &sdk.BootDiagnostics{Enabled: b.Enabled, StorageURI: b.StorageURI}
	}
	return out
}

func diagnosticsFrom(in *sdk.DiagnosticsProfile) *compute.DiagnosticsProfile {
	if in == nil {
		return nil
	}
	out := &compute.DiagnosticsProfile{}
	if b := in.BootDiagnostics; b != nil {
		out.BootDiagnostics = &compute.BootDiagnostics{Enabled: b.Enabled, StorageURI: b.StorageURI}
	}
	return out
}

func osProfileTo(in *compute.OSProfile) *sdk.OSProfile {
	if in == nil {
		return nil
	}
	return &sdk.OSProfile{
		ComputerName:             in.ComputerName,
		AdminUsername:            in.AdminUsername,
		AdminPassword:            in.AdminPassword,
		CustomData:               in.CustomData,
		AllowExtensionOperations: in.AllowExtensionOperations,
		LinuxConfiguration:       linuxTo(in.LinuxConfiguration),
		WindowsConfiguration:     windowsTo(in.WindowsConfiguration),
	}
}

func osProfileFrom(in *sdk.OSProfile) *compute.OSProfile {
	if in == nil {
		return nil
	}
	return &compute.OSProfile{
		ComputerName:             in.ComputerName,
		AdminUsername:            in.AdminUsername,
		AdminPassword:            in.AdminPassword,
		CustomData:               in.CustomData,
		AllowExtensionOperations: in.AllowExtensionOperations,
		LinuxConfiguration:       linuxFrom(in.LinuxConfiguration),
		WindowsConfiguration:     windowsFrom(in.WindowsConfiguration),
	}
}

func linuxTo(in *compute.LinuxConfiguration) *sdk.LinuxConfiguration {
	if in == nil {
		return nil
	}
	out := &sdk.LinuxConfiguration{
		DisablePasswordAuthentication: in.DisablePasswordAuthentication,
		ProvisionVMAgent:              in.ProvisionVMAgent,
	}
	if in.SSH != nil {
		out.SSH = &sdk.SSHConfiguration{
			PublicKeys: sliceTo(in.SSH.PublicKeys, func(k *compute.SSHPublicKey) sdk.SSHPublicKey {
				return sdk.SSHPublicKey{Path: k.Path, KeyData: k.KeyData}
			}),
		}
	}
	return out
}

func linuxFrom(in *sdk.LinuxConfiguration) *compute.LinuxConfiguration {
	if in == nil {
		return nil
	}
	out := &compute.LinuxConfiguration{
		DisablePasswordAuthentication: in.DisablePasswordAuthentication,
		ProvisionVMAgent:              in.ProvisionVMAgent,
	}
	if in.SSH != nil {
		out.SSH = &compute.SSHConfiguration{
			PublicKeys: sliceFrom(in.SSH.PublicKeys, func(k *sdk.SSHPublicKey) *compute.SSHPublicKey {
				return &compute.SSHPublicKey{Path: k.Path, KeyData: k.KeyData}
			}),
		}
	}
	return out
}

func windowsTo(in *compute.WindowsConfiguration) *sdk.WindowsConfiguration {
	if in == nil {
		return nil
	}
	out := &sdk.WindowsConfiguration{
		ProvisionVMAgent:       in.ProvisionVMAgent,
		EnableAutomaticUpdates: in.EnableAutomaticUpdates,
		TimeZone:               in.TimeZone,
		AdditionalUnattendContent: sliceTo(in.AdditionalUnattendContent, func(c *compute.AdditionalUnattendContent) sdk.AdditionalUnattendContent {
			return sdk.AdditionalUnattendContent{
				PassName:      enumTo[sdk.PassNames](c.PassName),
				ComponentName: enumTo[sdk.ComponentNames](c.ComponentName),
				SettingName:   enumTo[sdk.SettingNames](c.SettingName),
				Content:       c.Content,
			}
		}),
	}
	if in.WinRM != nil {
		out.WinRM = &sdk.WinRMConfiguration{
			Listeners: sliceTo(in.WinRM.Listeners, func(l *compute.WinRMListener) sdk.WinRMListener {
				return sdk.WinRMListener{
					Protocol:       enumTo[sdk.ProtocolTypes](l.Protocol),
					CertificateURL: l.CertificateURL,
				}
			}),
		}
	}
	return out
}

func windowsFrom(in *sdk.WindowsConfiguration) *compute.WindowsConfiguration {
	if in == nil {
		return nil
	}
	out := &compute.WindowsConfiguration{
		ProvisionVMAgent:       in.ProvisionVMAgent,
		EnableAutomaticUpdates: in.EnableAutomaticUpdates,
		TimeZone:               in.TimeZone,
		AdditionalUnattendContent: sliceFrom(in.AdditionalUnattendContent, func(c *sdk.AdditionalUnattendContent) *compute.AdditionalUnattendContent {
			return &compute.AdditionalUnattendContent{
				PassName:      enumFrom[compute.PassNames](c.PassName),
				ComponentName: enumFrom[compute.ComponentNames](c.ComponentName),
				SettingName:   enumFrom[compute.SettingNames](c.SettingName),
				Content:       c.Content,
			}
		}),
	}
	if in.WinRM != nil {
		out.WinRM = &compute.WinRMConfiguration{
			Listeners: sliceFrom(in.WinRM.Listeners, func(l *sdk.WinRMListener) *compute.WinRMListener {
				return &compute.WinRMListener{
					Protocol:       enumFrom[compute.ProtocolTypes](l.Protocol),
					CertificateURL: l.CertificateURL,
				}
			}),
		}
	}
	return out
}

func storageProfileTo(in *compute.StorageProfile) *sdk.StorageProfile {
	if in == nil {
		return nil
	}
	out := &sdk.StorageProfile{
		ImageReference: imageReferenceTo(in.ImageReference),
		DataDisks: sliceTo(in.DataDisks, func(d *compute.DataDisk) sdk.DataDisk {
			return sdk.DataDisk{
				Lun:                     d.Lun,
				Name:                    d.Name,
				Caching:                 enumTo[sdk.CachingTypes](d.Caching),
				CreateOption:            enumTo[sdk.DiskCreateOptionTypes](d.CreateOption),
				DiskSizeGB:              d.DiskSizeGB,
				ManagedDisk:             managedDiskTo(d.ManagedDisk),
				ToBeDetached:            d.ToBeDetached,
				WriteAcceleratorEnabled: d.WriteAcceleratorEnabled,
			}
		}),
	}
	if d := in.OSDisk; d != nil {
		out.OsDisk = &sdk.OSDisk{
			OsType:                  enumTo[sdk.OperatingSystemTypes](d.OSType),
			Name:                    d.Name,
			Caching:                 enumTo[sdk.CachingTypes](d.Caching),
			CreateOption:            enumTo[sdk.DiskCreateOptionTypes](d.CreateOption),
			DiskSizeGB:              d.DiskSizeGB,
			ManagedDisk:             managedDiskTo(d.ManagedDisk),
			WriteAcceleratorEnabled: d.WriteAcceleratorEnabled,
		}
	}
	return out
}

func storageProfileFrom(in *sdk.StorageProfile) *compute.StorageProfile {
	if in == nil {
		return nil
	}
	out := &compute.StorageProfile{
		ImageReference: imageReferenceFrom(in.ImageReference),
		DataDisks: sliceFrom(in.DataDisks, func(d *sdk.DataDisk) *compute.DataDisk {
			return &compute.DataDisk{
				Lun:                     d.Lun,
				Name:                    d.Name,
				Caching:                 enumFrom[compute.CachingTypes](d.Caching),
				CreateOption:            enumFrom[compute.DiskCreateOptionTypes](d.CreateOption),
				DiskSizeGB:              d.DiskSizeGB,
				ManagedDisk:             managedDiskFrom(d.ManagedDisk),
				ToBeDetached:            d.ToBeDetached,
				WriteAcceleratorEnabled: d.WriteAcceleratorEnabled,
			}
		}),
	}
	if d := in.OsDisk; d != nil {
		out.OSDisk = &compute.OSDisk{
			OSType:                  enumFrom[compute.OperatingSystemTypes](d.OsType),
			Name:                    d.Name,
			Caching:                 enumFrom[compute.CachingTypes](d.Caching),
			CreateOption:            enumFrom[compute.DiskCreateOptionTypes](d.CreateOption),
			DiskSizeGB:              d.DiskSizeGB,
			ManagedDisk:             managedDiskFrom(d.ManagedDisk),
			WriteAcceleratorEnabled: d.WriteAcceleratorEnabled,
		}
	}
	return out
}

func imageReferenceTo(in *compute.ImageReference) *sdk.ImageReference {
	if in == nil {
		return nil
	}
	return &sdk.ImageReference{ID: in.ID, Publisher: in.Publisher, Offer: in.Offer, Sku: in.SKU, Version: in.Version}
}

func imageReferenceFrom(in *sdk.ImageReference) *compute.ImageReference {
	if in == nil {
		return nil
	}
	return &compute.ImageReference{ID: in.ID, Publisher: in.Publisher, Offer: in.Offer, SKU: in.Sku, Version: in.Version}
}

func managedDiskTo(in *compute.ManagedDiskParameters) *sdk.ManagedDiskParameters {
	if in == nil {
		return nil
	}
	return &sdk.ManagedDiskParameters{
		ID:                 in.ID,
		StorageAccountType: enumTo[sdk.StorageAccountTypes](in.StorageAccountType),
	}
}

func managedDiskFrom(in *sdk.ManagedDiskParameters) *compute.ManagedDiskParameters {
	if in == nil {
		return nil
	}
	return &compute.ManagedDiskParameters{
		ID:                 in.ID,
		StorageAccountType: enumFrom[compute.StorageAccountTypes](in.StorageAccountType),
	}
}

func networkProfileTo(in *compute.NetworkProfile) *sdk.NetworkProfile {
	if in == nil {
		return nil
	}
	return &sdk.NetworkProfile{
		NetworkInterfaces: sliceTo(in.NetworkInterfaces, func(n *compute.NetworkInterfaceReference) sdk.NetworkInterfaceReference {
			out := sdk.NetworkInterfaceReference{ID: n.ID}
			if n.Properties != nil {
				out.NetworkInterfaceReferenceProperties = &sdk.NetworkInterfaceReferenceProperties{Primary: n.Properties.Primary}
			}
			return out
		}),
	}
}

func networkProfileFrom(in *sdk.NetworkProfile) *compute.NetworkProfile {
	if in == nil {
		return nil
	}
	return &compute.NetworkProfile{
		NetworkInterfaces: sliceFrom(in.NetworkInterfaces, func(n *sdk.NetworkInterfaceReference) *compute.NetworkInterfaceReference {
			out := &compute.NetworkInterfaceReference{ID: n.ID}
			if n.NetworkInterfaceReferenceProperties != nil {
				out.Properties = &compute.NetworkInterfaceReferenceProperties{Primary: n.NetworkInterfaceReferenceProperties.Primary}
			}
			return out
		}),
	}
}

func instanceViewFrom(in *sdk.VirtualMachineInstanceView) *compute.VirtualMachineInstanceView {
	if in == nil {
		return nil
	}
	return &compute.VirtualMachineInstanceView{
		ComputerName: in.ComputerName,
		Statuses:     statusesFrom(in.Statuses),
	}
}

func statusesFrom(in *[]sdk.InstanceViewStatus) []*compute.InstanceViewStatus {
	return sliceFrom(in, func(s *sdk.InstanceViewStatus) *compute.InstanceViewStatus {
		return &compute.InstanceViewStatus{
			Code:          s.Code,
			DisplayStatus: s.DisplayStatus,
			Level:         enumFrom[compute.StatusLevelTypes](s.Level),
			Message:       s.Message,
			Time:          s.Time,
		}
	})
}
