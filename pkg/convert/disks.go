package convert

import (
	sdk "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"

	"github.com/alexeldeib/azmodels/api/compute"
)

// DiskToSDK converts a managed disk for use with the SDK client.
// A nil disk converts to the zero model.
func DiskToSDK(local *compute.Disk) sdk.Disk {
	if local == nil {
		return sdk.Disk{}
	}
	remote := sdk.Disk{
		ID:        local.ID,
		Name:      local.Name,
		Type:      local.Type,
		Location:  local.Location,
		Tags:      copyTags(local.Tags),
		Zones:     stringsTo(local.Zones),
		ManagedBy: local.ManagedBy,
	}
	if local.SKU != nil {
		remote.Sku = &sdk.DiskSku{
			Name: enumTo[sdk.DiskStorageAccountTypes](local.SKU.Name),
			Tier: local.SKU.Tier,
		}
	}
	if p := local.Properties; p != nil {
		remote.DiskProperties = &sdk.DiskProperties{
			CreationData:      creationDataTo(p.CreationData),
			DiskSizeGB:        p.DiskSizeGB,
			DiskState:         enumTo[sdk.DiskState](p.DiskState),
			HyperVGeneration:  enumTo[sdk.HyperVGeneration](p.HyperVGeneration),
			OsType:            enumTo[sdk.OperatingSystemTypes](p.OSType),
			ProvisioningState: p.ProvisioningState,
			TimeCreated:       p.TimeCreated,
		}
	}
	return remote
}

// DiskFromSDK converts a managed disk returned by the SDK client.
// It returns nil for nil.
func DiskFromSDK(remote *sdk.Disk) *compute.Disk {
	if remote == nil {
		return nil
	}
	local := &compute.Disk{
		ID:        remote.ID,
		Name:      remote.Name,
		Type:      remote.Type,
		Location:  remote.Location,
		Tags:      copyTags(remote.Tags),
		Zones:     stringsFrom(remote.Zones),
		ManagedBy: remote.ManagedBy,
	}
	if remote.Sku != nil {
		local.SKU = &compute.DiskSKU{
			Name: enumFrom[compute.DiskStorageAccountTypes](remote.Sku.Name),
			Tier: remote.Sku.Tier,
		}
	}
	if p := remote.DiskProperties; p != nil {
		local.Properties = &compute.DiskProperties{
			CreationData:      creationDataFrom(p.CreationData),
			DiskSizeGB:        p.DiskSizeGB,
			DiskState:         enumFrom[compute.DiskState](p.DiskState),
			HyperVGeneration:  enumFrom[compute.HyperVGeneration](p.HyperVGeneration),
			OSType:            enumFrom[compute.OperatingSystemTypes](p.OsType),
			ProvisioningState: p.ProvisioningState,
			TimeCreated:       p.TimeCreated,
		}
	}
	return local
}

func creationDataTo(in *compute.CreationData) *sdk.CreationData {
	if in == nil {
		return nil
	}
	out := &sdk.CreationData{
		CreateOption:     enumTo[sdk.DiskCreateOption](in.CreateOption),
		SourceResourceID: in.SourceResourceID,
		SourceURI:        in.SourceURI,
		StorageAccountID: in.StorageAccountID,
		UploadSizeBytes:  in.UploadSizeBytes,
	}
	if in.ImageReference != nil {
		out.ImageReference = &sdk.ImageDiskReference{ID: in.ImageReference.ID, Lun: in.ImageReference.Lun}
	}
	return out
}

func creationDataFrom(in *sdk.CreationData) *compute.CreationData {
	if in == nil {
		return nil
	}
	out := &compute.CreationData{
		CreateOption:     enumFrom[compute.DiskCreateOption](in.CreateOption),
		SourceResourceID: in.SourceResourceID,
		SourceURI:        in.SourceURI,
		StorageAccountID: in.StorageAccountID,
		UploadSizeBytes:  in.UploadSizeBytes,
	}
	if in.ImageReference != nil {
		out.ImageReference = &compute.ImageDiskReference{ID: in.ImageReference.ID, Lun: in.ImageReference.Lun}
	}
	return out
}
