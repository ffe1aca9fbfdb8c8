package convert_test

import (
	"time"

	sdk "github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/Azure/go-autorest/autorest/date"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/pkg/convert"
)

func ptr[T any](v T) *T {
	return &v
}

func newVM() *compute.VirtualMachine {
	return &compute.VirtualMachine{
		ID:       to.StringPtr("/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm"),
		Name:     to.StringPtr("vm"),
		Location: to.StringPtr("westus2"),
		Tags:     map[string]*string{"owner": to.StringPtr("me"), "empty": nil},
		Zones:    []*string{to.StringPtr("1")},
		Identity: &compute.VirtualMachineIdentity{
			Type: ptr(compute.ResourceIdentityType("SystemAssigned, UserAssigned")),
			UserAssignedIdentities: map[string]*compute.UserAssignedIdentitiesValue{
				"/id": {ClientID: to.StringPtr("client"), PrincipalID: to.StringPtr("principal")},
			},
		},
		Properties: &compute.VirtualMachineProperties{
			HardwareProfile: &compute.HardwareProfile{VMSize: ptr(compute.VirtualMachineSizeTypes("Standard_D2s_v5"))},
			Priority:        ptr(compute.VirtualMachinePriorityTypesSpot),
			EvictionPolicy:  ptr(compute.VirtualMachineEvictionPolicyTypes("Hibernate")),
			OSProfile: &compute.OSProfile{
				ComputerName:  to.StringPtr("vm"),
				AdminUsername: to.StringPtr("azureuser"),
				LinuxConfiguration: &compute.LinuxConfiguration{
					DisablePasswordAuthentication: to.BoolPtr(true),
					SSH: &compute.SSHConfiguration{
						PublicKeys: []*compute.SSHPublicKey{{Path: to.StringPtr("/home/azureuser/.ssh/authorized_keys"), KeyData: to.StringPtr("ssh-rsa AAAA")}},
					},
				},
			},
			StorageProfile: &compute.StorageProfile{
				ImageReference: &compute.ImageReference{Publisher: to.StringPtr("Canonical"), Offer: to.StringPtr("UbuntuServer"), SKU: to.StringPtr("18.04-LTS"), Version: to.StringPtr("latest")},
				OSDisk: &compute.OSDisk{
					OSType:       ptr(compute.OperatingSystemTypesLinux),
					Caching:      ptr(compute.CachingTypesReadOnly),
					CreateOption: ptr(compute.DiskCreateOptionTypesFromImage),
					DiskSizeGB:   to.Int32Ptr(30),
					ManagedDisk:  &compute.ManagedDiskParameters{StorageAccountType: ptr(compute.StorageAccountTypesPremiumLRS)},
				},
				DataDisks: []*compute.DataDisk{
					{
						Lun:          to.Int32Ptr(0),
						CreateOption: ptr(compute.DiskCreateOptionTypes("Empty")),
						ToBeDetached: to.BoolPtr(false),
						ManagedDisk:  &compute.ManagedDiskParameters{StorageAccountType: ptr(compute.StorageAccountTypes("PremiumV3_LRS"))},
					},
				},
			},
			NetworkProfile: &compute.NetworkProfile{
				NetworkInterfaces: []*compute.NetworkInterfaceReference{
					{ID: to.StringPtr("/nic"), Properties: &compute.NetworkInterfaceReferenceProperties{Primary: to.BoolPtr(true)}},
				},
			},
			DiagnosticsProfile: &compute.DiagnosticsProfile{BootDiagnostics: &compute.BootDiagnostics{Enabled: to.BoolPtr(true)}},
		},
	}
}

var _ = Describe("virtual machines", func() {
	It("should survive a trip through the SDK model", func() {
		local := newVM()
		remote := convert.VirtualMachineToSDK(local)
		Expect(cmp.Diff(local, convert.VirtualMachineFromSDK(&remote))).To(BeEmpty())
	})

	It("should carry unknown enum values as strings", func() {
		remote := convert.VirtualMachineToSDK(newVM())
		Expect(remote.HardwareProfile.VMSize).To(Equal(sdk.VirtualMachineSizeTypes("Standard_D2s_v5")))
		Expect(remote.EvictionPolicy).To(Equal(sdk.VirtualMachineEvictionPolicyTypes("Hibernate")))
		Expect((*remote.StorageProfile.DataDisks)[0].ManagedDisk.StorageAccountType).To(Equal(sdk.StorageAccountTypes("PremiumV3_LRS")))
	})

	It("should not share tags with the source", func() {
		local := newVM()
		remote := convert.VirtualMachineToSDK(local)
		*remote.Tags["owner"] = "you"
		Expect(*local.Tags["owner"]).To(Equal("me"))
	})

	It("should drop fields the SDK model does not define", func() {
		local := newVM()
		local.Properties.NetworkProfile.NetworkAPIVersion = ptr(compute.NetworkAPIVersion("2020-11-01"))
		remote := convert.VirtualMachineToSDK(local)
		Expect(convert.VirtualMachineFromSDK(&remote).Properties.NetworkProfile.NetworkAPIVersion).To(BeNil())
	})

	It("should skip nil list entries", func() {
		local := newVM()
		local.Properties.StorageProfile.DataDisks = append(local.Properties.StorageProfile.DataDisks, nil)
		remote := convert.VirtualMachineToSDK(local)
		Expect(*remote.StorageProfile.DataDisks).To(HaveLen(1))
	})

	It("should read the instance view", func() {
		remote := sdk.VirtualMachine{
			VirtualMachineProperties: &sdk.VirtualMachineProperties{
				InstanceView: &sdk.VirtualMachineInstanceView{
					ComputerName: to.StringPtr("vm"),
					Statuses: &[]sdk.InstanceViewStatus{
						{Code: to.StringPtr("PowerState/running"), Level: sdk.Info},
					},
				},
			},
		}
		local := convert.VirtualMachineFromSDK(&remote)
		Expect(local.Properties.InstanceView.Statuses).To(HaveLen(1))
		Expect(*local.Properties.InstanceView.Statuses[0].Level).To(Equal(compute.StatusLevelTypesInfo))
	})
})

var _ = Describe("disks", func() {
	It("should survive a trip through the SDK model", func() {
		created := date.Time{Time: time.Date(2023, 11, 2, 17, 4, 5, 0, time.UTC)}
		local := &compute.Disk{
			Name:      to.StringPtr("data"),
			Location:  to.StringPtr("westus2"),
			ManagedBy: to.StringPtr("/vm"),
			SKU:       &compute.DiskSKU{Name: ptr(compute.DiskStorageAccountTypes("PremiumV2_LRS")), Tier: to.StringPtr("Premium")},
			Properties: &compute.DiskProperties{
				CreationData: &compute.CreationData{
					CreateOption:   ptr(compute.DiskCreateOptionEmpty),
					ImageReference: &compute.ImageDiskReference{ID: to.StringPtr("/image"), Lun: to.Int32Ptr(1)},
				},
				DiskSizeGB:        to.Int32Ptr(64),
				DiskState:         ptr(compute.DiskStateUnattached),
				HyperVGeneration:  ptr(compute.HyperVGenerationV2),
				ProvisioningState: to.StringPtr("Succeeded"),
				TimeCreated:       &created,
			},
		}
		remote := convert.DiskToSDK(local)
		Expect(remote.Sku.Name).To(Equal(sdk.DiskStorageAccountTypes("PremiumV2_LRS")))
		Expect(cmp.Diff(local, convert.DiskFromSDK(&remote))).To(BeEmpty())
	})

	It("should treat an empty enum as absent", func() {
		local := &compute.Disk{SKU: &compute.DiskSKU{Name: ptr(compute.DiskStorageAccountTypes(""))}}
		remote := convert.DiskToSDK(local)
		Expect(convert.DiskFromSDK(&remote).SKU.Name).To(BeNil())
	})
})

var _ = Describe("scale sets", func() {
	It("should survive a trip through the SDK model", func() {
		local := &compute.VirtualMachineScaleSet{
			Name:     to.StringPtr("vmss"),
			Location: to.StringPtr("westus2"),
			SKU:      &compute.SKU{Name: to.StringPtr("Standard_D2s_v3"), Tier: to.StringPtr("Standard"), Capacity: to.Int64Ptr(3)},
			Identity: &compute.VirtualMachineIdentity{Type: ptr(compute.ResourceIdentityTypeSystemAssigned)},
			Properties: &compute.VirtualMachineScaleSetProperties{
				Overprovision: to.BoolPtr(false),
				UpgradePolicy: &compute.UpgradePolicy{
					Mode:                 ptr(compute.UpgradeModeRolling),
					RollingUpgradePolicy: &compute.RollingUpgradePolicy{MaxBatchInstancePercent: to.Int32Ptr(20), PauseTimeBetweenBatches: to.StringPtr("PT0S")},
				},
				VirtualMachineProfile: &compute.VirtualMachineScaleSetVMProfile{
					Priority: ptr(compute.VirtualMachinePriorityTypesRegular),
					OSProfile: &compute.VirtualMachineScaleSetOSProfile{
						ComputerNamePrefix: to.StringPtr("node"),
						AdminUsername:      to.StringPtr("azureuser"),
					},
					StorageProfile: &compute.StorageProfile{
						OSDisk: &compute.OSDisk{
							Caching:      ptr(compute.CachingTypesReadOnly),
							CreateOption: ptr(compute.DiskCreateOptionTypesFromImage),
							ManagedDisk:  &compute.ManagedDiskParameters{StorageAccountType: ptr(compute.StorageAccountTypes("PremiumV3_LRS"))},
						},
					},
				},
			},
		}
		remote := convert.VirtualMachineScaleSetToSDK(local)
		Expect(*remote.VirtualMachineProfile.OsProfile.ComputerNamePrefix).To(Equal("node"))
		Expect(cmp.Diff(local, convert.VirtualMachineScaleSetFromSDK(&remote))).To(BeEmpty())
	})
})

var _ = Describe("nil models", func() {
	It("should convert to zero models and back to nil", func() {
		Expect(convert.VirtualMachineToSDK(nil)).To(Equal(sdk.VirtualMachine{}))
		Expect(convert.DiskToSDK(nil)).To(Equal(sdk.Disk{}))
		Expect(convert.VirtualMachineScaleSetToSDK(nil)).To(Equal(sdk.VirtualMachineScaleSet{}))

		Expect(convert.VirtualMachineFromSDK(nil)).To(BeNil())
		Expect(convert.DiskFromSDK(nil)).To(BeNil())
		Expect(convert.VirtualMachineScaleSetFromSDK(nil)).To(BeNil())
	})
})
