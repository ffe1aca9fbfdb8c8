/*
Copyright 2019 Alexander Eldeib.
*/

package vmspec_test

import (
	"github.com/Azure/go-autorest/autorest/to"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/pkg/lint"
	"github.com/alexeldeib/azmodels/pkg/scheme"
	"github.com/alexeldeib/azmodels/pkg/specs/vmspec"
)

var _ = Describe("vm spec", func() {
	It("should fill in defaults", func() {
		spec, err := vmspec.New()
		Expect(err).NotTo(HaveOccurred())
		vm := spec.Build()
		Expect(*vm.Type).To(Equal("Microsoft.Compute/virtualMachines"))
		Expect(*vm.Properties.OSProfile.AdminUsername).To(Equal(vmspec.DefaultUsername))
		Expect(*vm.Properties.OSProfile.AdminPassword).NotTo(BeEmpty())
		Expect(*vm.Properties.StorageProfile.ImageReference.Publisher).To(Equal("Canonical"))
		Expect(*vm.Properties.StorageProfile.OSDisk.DiskSizeGB).To(BeEquivalentTo(vmspec.DefaultOSDiskSizeGB))
	})

	It("should apply options in order", func() {
		spec, err := vmspec.New(
			vmspec.Name("vm"),
			vmspec.Location("westus2"),
			vmspec.Zone("2"),
			vmspec.Size(compute.VirtualMachineSizeTypesStandardD2sV3),
			vmspec.Size("Standard_D2s_v5"),
			vmspec.Hostname("host"),
			vmspec.NICs("/nic0", "/nic1"),
			vmspec.OSDisk(64, compute.StorageAccountTypesPremiumLRS),
			vmspec.Tag("owner", "me"),
		)
		Expect(err).NotTo(HaveOccurred())
		vm := spec.Build()
		Expect(*vm.Name).To(Equal("vm"))
		Expect(*vmspec.GetZone(spec)).To(Equal("2"))
		Expect(*vmspec.GetSize(spec)).To(Equal(compute.VirtualMachineSizeTypes("Standard_D2s_v5")))
		Expect(*vm.Properties.OSProfile.ComputerName).To(Equal("host"))
		nics := vm.Properties.NetworkProfile.NetworkInterfaces
		Expect(nics).To(HaveLen(2))
		Expect(*nics[0].Properties.Primary).To(BeTrue())
		Expect(*nics[1].Properties.Primary).To(BeFalse())
		Expect(*nics[1].ID).To(Equal("/nic1"))
		Expect(*vm.Properties.StorageProfile.OSDisk.ManagedDisk.StorageAccountType).To(Equal(compute.StorageAccountTypesPremiumLRS))
		Expect(*vm.Tags["owner"]).To(Equal("me"))
	})

	It("should switch to key authentication", func() {
		spec, err := vmspec.New(vmspec.SSHKey("ssh-rsa AAAA me@host\n"))
		Expect(err).NotTo(HaveOccurred())
		profile := spec.Build().Properties.OSProfile
		Expect(profile.AdminPassword).To(BeNil())
		Expect(*profile.LinuxConfiguration.DisablePasswordAuthentication).To(BeTrue())
		keys := profile.LinuxConfiguration.SSH.PublicKeys
		Expect(keys).To(HaveLen(1))
		Expect(*keys[0].Path).To(Equal("/home/azureuser/.ssh/authorized_keys"))
		Expect(*keys[0].KeyData).To(Equal("ssh-rsa AAAA me@host"))
	})

	It("should only set eviction when given", func() {
		spec, err := vmspec.New(vmspec.Priority(compute.VirtualMachinePriorityTypesSpot, compute.VirtualMachineEvictionPolicyTypesDeallocate))
		Expect(err).NotTo(HaveOccurred())
		Expect(*spec.Build().Properties.EvictionPolicy).To(Equal(compute.VirtualMachineEvictionPolicyTypesDeallocate))

		spec.Apply(vmspec.Priority(compute.VirtualMachinePriorityTypesRegular, ""))
		Expect(spec.Build().Properties.EvictionPolicy).To(BeNil())
	})

	It("should initialize missing sections of an existing vm", func() {
		spec := vmspec.NewFromExisting(&compute.VirtualMachine{})
		spec.Apply(vmspec.Hostname("host"), vmspec.Image("p", "o", "s", "v"), vmspec.SSHKey("key"))
		vm := spec.Build()
		Expect(*vm.Properties.OSProfile.ComputerName).To(Equal("host"))
		Expect(*vm.Properties.OSProfile.AdminUsername).To(Equal(vmspec.DefaultUsername))
		Expect(*vm.Properties.StorageProfile.ImageReference.SKU).To(Equal("s"))
	})

	It("should produce a document without lint findings", func() {
		spec, err := vmspec.New(vmspec.Name("vm"), vmspec.Size(compute.VirtualMachineSizeTypesStandardD2sV3))
		Expect(err).NotTo(HaveOccurred())
		vm := spec.Build()
		Expect(lint.New(scheme.Registry).Lint(&vm).Findings).To(BeEmpty())
	})
})

var _ = Describe("observed state", func() {
	newPair := func() (*compute.VirtualMachine, *compute.VirtualMachine) {
		desired, err := vmspec.New(vmspec.Name("vm"), vmspec.Size(compute.VirtualMachineSizeTypesStandardD2sV3), vmspec.Tag("a", "b"))
		Expect(err).NotTo(HaveOccurred())
		observed, err := vmspec.New(vmspec.Name("vm"), vmspec.Size(compute.VirtualMachineSizeTypesStandardD2sV3), vmspec.Tag("a", "b"), vmspec.Tag("extra", "x"))
		Expect(err).NotTo(HaveOccurred())
		want, got := desired.Build(), observed.Build()
		return &want, &got
	}

	It("should not need an update when nothing changed", func() {
		desired, observed := newPair()
		Expect(vmspec.NeedsUpdate(desired, observed)).To(BeFalse())
	})

	It("should compare sizes exactly", func() {
		desired, observed := newPair()
		lower := compute.VirtualMachineSizeTypes("standard_d2s_v3")
		observed.Properties.HardwareProfile = &compute.HardwareProfile{VMSize: &lower}
		Expect(vmspec.NeedsUpdate(desired, observed)).To(BeTrue())
	})

	It("should notice a changed tag", func() {
		desired, observed := newPair()
		observed.Tags["a"] = to.StringPtr("c")
		Expect(vmspec.NeedsUpdate(desired, observed)).To(BeTrue())
	})

	It("should read the power state", func() {
		vm := &compute.VirtualMachine{Properties: &compute.VirtualMachineProperties{
			InstanceView: &compute.VirtualMachineInstanceView{Statuses: []*compute.InstanceViewStatus{
				{Code: to.StringPtr("ProvisioningState/succeeded")},
				{Code: to.StringPtr("PowerState/deallocated")},
			}},
		}}
		Expect(vmspec.GetPowerState(vmspec.NewFromExisting(vm))).To(Equal("deallocated"))
		Expect(vmspec.GetPowerState(vmspec.NewFromExisting(&compute.VirtualMachine{}))).To(BeEmpty())
	})
})
