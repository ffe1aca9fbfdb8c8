/*
Copyright 2019 Alexander Eldeib.
*/

package documents_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/cmd/documents"
)

var _ = Describe("decode", func() {
	It("should print every document in yaml", func() {
		out, err := run(documents.NewDecodeCommand, "decode", "-f", "testdata/docs.yaml", "-o", "yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("evictionPolicy: Hibernate"))
		Expect(out).To(ContainSubstring("name: PremiumV3_LRS"))
		Expect(out).To(ContainSubstring("- 10.0.0.0/16"))
		Expect(out).To(ContainSubstring("\n---\n"))
	})

	It("should reject undeclared fields when strict", func() {
		_, err := run(documents.NewDecodeCommand, "decode", "-f", "testdata/lossy.yaml", "--strict")
		Expect(err).To(MatchError(ContainSubstring("futureField")))
	})

	It("should fail on a closed enum value", func() {
		out, err := run(documents.NewDecodeCommand, "decode", "-f", "testdata/closed.yaml")
		Expect(err).To(MatchError(ContainSubstring("WriteBack")))
		Expect(out).To(BeEmpty())
	})

	It("should require a file", func() {
		_, err := run(documents.NewDecodeCommand, "decode")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("roundtrip", func() {
	It("should pass documents that survive", func() {
		out, err := run(documents.NewRoundtripCommand, "roundtrip", "-f", "testdata/docs.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("document 0: VirtualMachine unchanged"))
		Expect(out).To(ContainSubstring("document 1: Disk unchanged"))
		Expect(out).To(ContainSubstring("document 2: Microsoft.Network/virtualNetworks is not registered"))
	})

	It("should show what was lost", func() {
		out, err := run(documents.NewRoundtripCommand, "roundtrip", "-f", "testdata/lossy.yaml")
		Expect(err).To(MatchError(ContainSubstring("1 of 1 documents")))
		Expect(out).To(ContainSubstring("--- input"))
		Expect(out).To(ContainSubstring("+++ Disk"))
		Expect(out).To(MatchRegexp(`(?m)^-\s+"futureField": 1`))
	})
})

var _ = Describe("lint", func() {
	It("should warn about unknown values without failing", func() {
		out, err := run(documents.NewLintCommand, "lint", "-f", "testdata/docs.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring(`document 0: warning: properties.evictionPolicy: "Hibernate" is not a known VirtualMachineEvictionPolicyTypes`))
		Expect(out).To(ContainSubstring(`document 1: warning: sku.name: "PremiumV3_LRS"`))
	})

	It("should fail on warnings when strict", func() {
		_, err := run(documents.NewLintCommand, "lint", "-f", "testdata/docs.yaml", "--strict")
		Expect(err).To(MatchError(ContainSubstring("Hibernate")))
	})

	It("should honor ignored families", func() {
		out, err := run(documents.NewLintCommand, "lint", "-f", "testdata/docs.yaml", "--strict",
			"--ignore", "VirtualMachineEvictionPolicyTypes,DiskStorageAccountTypes")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(BeEmpty())
	})
})

var _ = Describe("convert", func() {
	It("should dump sdk models", func() {
		out, err := run(documents.NewConvertCommand, "convert", "-f", "testdata/docs.yaml", "--dump", "spew")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("# document 0: VirtualMachine"))
		Expect(out).To(ContainSubstring("# document 1: Disk"))
		Expect(out).NotTo(ContainSubstring("# document 2"))
		Expect(out).To(ContainSubstring("Hibernate"))
	})

	It("should print the request the sdk would send", func() {
		out, err := run(documents.NewConvertCommand, "convert", "-f", "testdata/docs.yaml", "--request",
			"--subscription", "sub", "--resource-group", "rg")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("PUT https://management.azure.com/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm-a?"))
		Expect(out).To(ContainSubstring("api-version=2019-07-01"))
		Expect(out).To(ContainSubstring("User-Agent: "))
		Expect(out).To(ContainSubstring(`"evictionPolicy": "Hibernate"`))
		Expect(out).To(ContainSubstring("/providers/Microsoft.Compute/disks/disk-a?"))
	})

	It("should target the configured cloud", func() {
		out, err := run(documents.NewConvertCommand, "convert", "-f", "testdata/docs.yaml", "--request", "--cloud", "AzureChinaCloud")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("PUT https://management.chinacloudapi.cn/subscriptions/"))
	})
})
