/*
Copyright 2019 Alexander Eldeib.
*/

package compute_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/pkg/openenum"
)

var _ = Describe("Enums", func() {
	It("should index every family", func() {
		Expect(compute.Enums.Len()).To(Equal(30))
		for _, f := range compute.Enums.Families() {
			Expect(f.Wire()).NotTo(BeEmpty(), f.Name())
		}
	})

	It("should keep declared spellings", func() {
		Expect(string(compute.StorageAccountTypesStandardLRS)).To(Equal("Standard_LRS"))
		Expect(string(compute.ArchitectureX64)).To(Equal("x64"))
		Expect(string(compute.NetworkAPIVersionTwoThousandTwenty1101)).To(Equal("2020-11-01"))
		Expect(string(compute.ComponentNamesMicrosoftWindowsShellSetup)).To(Equal("Microsoft-Windows-Shell-Setup"))
		Expect(string(compute.ResourceIdentityTypeSystemAssignedUserAssigned)).To(Equal("SystemAssigned, UserAssigned"))
	})

	It("should list possible values in declaration order", func() {
		Expect(compute.PossibleVirtualMachinePriorityTypesValues()).To(Equal([]compute.VirtualMachinePriorityTypes{
			compute.VirtualMachinePriorityTypesLow,
			compute.VirtualMachinePriorityTypesRegular,
			compute.VirtualMachinePriorityTypesSpot,
		}))
	})

	It("should round trip every declared value of every family", func() {
		for _, f := range compute.Enums.Families() {
			for _, w := range f.Wire() {
				Expect(f.IsKnown(w)).To(BeTrue(), "%s %q", f.Name(), w)
			}
		}

		for _, v := range compute.PossibleStorageAccountTypesValues() {
			b, err := json.Marshal(v)
			Expect(err).NotTo(HaveOccurred())
			var out compute.StorageAccountTypes
			Expect(json.Unmarshal(b, &out)).To(Succeed())
			Expect(out).To(Equal(v))
		}
	})

	It("should preserve unknown values of open families", func() {
		var sku compute.StorageAccountTypes
		Expect(json.Unmarshal([]byte(`"PremiumV3_LRS"`), &sku)).To(Succeed())
		Expect(sku).To(Equal(compute.StorageAccountTypes("PremiumV3_LRS")))

		b, err := json.Marshal(sku)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal(`"PremiumV3_LRS"`))
	})

	It("should not fold case", func() {
		var sku compute.StorageAccountTypes
		Expect(json.Unmarshal([]byte(`"standard_lrs"`), &sku)).To(Succeed())
		Expect(sku).NotTo(Equal(compute.StorageAccountTypesStandardLRS))
		f, ok := compute.Enums.Lookup("StorageAccountTypes")
		Expect(ok).To(BeTrue())
		Expect(f.IsKnown("standard_lrs")).To(BeFalse())
	})

	It("should reject unknown values of closed families", func() {
		var caching compute.CachingTypes
		err := json.Unmarshal([]byte(`"WriteBack"`), &caching)
		Expect(err).To(HaveOccurred())
		Expect(openenum.IsUnknownValue(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("CachingTypes"))
	})

	It("should decode the composite identity type", func() {
		var id compute.VirtualMachineIdentity
		Expect(json.Unmarshal([]byte(`{"type":"SystemAssigned, UserAssigned"}`), &id)).To(Succeed())
		Expect(*id.Type).To(Equal(compute.ResourceIdentityTypeSystemAssignedUserAssigned))
	})
})
