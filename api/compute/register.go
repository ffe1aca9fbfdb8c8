/*
Copyright 2019 Alexander Eldeib.
*/

package compute

import (
	"github.com/alexeldeib/azmodels/pkg/registry"
)

var (
	// RegistryBuilder collects the kinds and enumerations of this package.
	RegistryBuilder = registry.NewBuilder(addKnownKinds)

	// AddToRegistry adds the kinds and enumerations of this package to a registry.
	AddToRegistry = RegistryBuilder.AddToRegistry
)

func addKnownKinds(r *registry.Registry) error {
	kinds := []registry.Kind{
		registry.KindFor[VirtualMachine]("VirtualMachine", "Microsoft.Compute/virtualMachines"),
		registry.KindFor[VirtualMachineExtension]("VirtualMachineExtension", "Microsoft.Compute/virtualMachines/extensions"),
		registry.KindFor[VirtualMachineScaleSet]("VirtualMachineScaleSet", "Microsoft.Compute/virtualMachineScaleSets"),
		registry.KindFor[AvailabilitySet]("AvailabilitySet", "Microsoft.Compute/availabilitySets"),
		registry.KindFor[Disk]("Disk", "Microsoft.Compute/disks"),
		registry.KindFor[Snapshot]("Snapshot", "Microsoft.Compute/snapshots"),
		registry.KindFor[Gallery]("Gallery", "Microsoft.Compute/galleries"),
		registry.KindFor[GalleryImage]("GalleryImage", "Microsoft.Compute/galleries/images"),
		registry.KindFor[GalleryImageVersion]("GalleryImageVersion", "Microsoft.Compute/galleries/images/versions"),
		registry.KindFor[VirtualMachineListResult]("VirtualMachineListResult", ""),
		registry.KindFor[VirtualMachineScaleSetListResult]("VirtualMachineScaleSetListResult", ""),
		registry.KindFor[DiskList]("DiskList", ""),
		registry.KindFor[CloudError]("CloudError", ""),
	}
	for i := range kinds {
		kinds[i] = kinds[i].At(APIVersion)
	}
	if err := r.Register(kinds...); err != nil {
		return err
	}
	return r.AddEnums(Enums)
}
