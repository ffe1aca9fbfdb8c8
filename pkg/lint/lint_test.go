package lint_test

import (
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/pkg/decoder"
	"github.com/alexeldeib/azmodels/pkg/lint"
	"github.com/alexeldeib/azmodels/pkg/scheme"
)

func ptr[T any](v T) *T {
	return &v
}

func newVM() *compute.VirtualMachine {
	return &compute.VirtualMachine{
		Name:     to.StringPtr("vm"),
		Location: to.StringPtr("westus2"),
		Properties: &compute.VirtualMachineProperties{
			HardwareProfile: &compute.HardwareProfile{VMSize: ptr(compute.VirtualMachineSizeTypesStandardD2sV3)},
			Priority:        ptr(compute.VirtualMachinePriorityTypes("Premium")),
			StorageProfile: &compute.StorageProfile{
				OSDisk: &compute.OSDisk{
					Caching:    ptr(compute.CachingTypes("WriteBack")),
					OSType:     ptr(compute.OperatingSystemTypesLinux),
					DiskSizeGB: to.Int32Ptr(30),
				},
				DataDisks: []*compute.DataDisk{
					{Lun: to.Int32Ptr(0), ManagedDisk: &compute.ManagedDiskParameters{StorageAccountType: ptr(compute.StorageAccountTypes("PremiumV3_LRS"))}},
				},
			},
		},
	}
}

var _ = Describe("Linter", func() {
	var l *lint.Linter

	BeforeEach(func() {
		l = lint.New(scheme.Registry)
	})

	It("should report unknown values by path", func() {
		r := l.Lint(newVM())
		Expect(r.Findings).To(HaveLen(3))

		Expect(r.Warnings()).To(ConsistOf(
			lint.Finding{
				Path:     "properties.priority",
				Family:   "VirtualMachinePriorityTypes",
				Value:    "Premium",
				Severity: lint.SeverityWarning,
				Message:  `"Premium" is not a known VirtualMachinePriorityTypes`,
			},
			lint.Finding{
				Path:     "properties.storageProfile.dataDisks[0].managedDisk.storageAccountType",
				Family:   "StorageAccountTypes",
				Value:    "PremiumV3_LRS",
				Severity: lint.SeverityWarning,
				Message:  `"PremiumV3_LRS" is not a known StorageAccountTypes`,
			},
		))

		errs := r.Errors()
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Path).To(Equal("properties.storageProfile.osDisk.caching"))
		Expect(errs[0].Family).To(Equal("CachingTypes"))
	})

	It("should only fail on warnings when strict", func() {
		vm := newVM()
		vm.Properties.StorageProfile.OSDisk.Caching = ptr(compute.CachingTypesReadOnly)
		r := l.Lint(vm)
		Expect(r.Errors()).To(BeEmpty())
		Expect(r.Err(false)).NotTo(HaveOccurred())

		err := r.Err(true)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("properties.priority"))
	})

	It("should skip ignored families", func() {
		l = lint.New(scheme.Registry, lint.Ignore("StorageAccountTypes", "VirtualMachinePriorityTypes"))
		r := l.Lint(newVM())
		Expect(r.Findings).To(HaveLen(1))
		Expect(r.Findings[0].Family).To(Equal("CachingTypes"))
	})

	It("should not modify its input", func() {
		vm := newVM()
		l.Lint(vm)
		Expect(cmp.Diff(newVM(), vm)).To(BeEmpty())
	})

	It("should accept nil and unrelated values", func() {
		Expect(l.Lint(nil).Findings).To(BeEmpty())
		Expect(l.Lint((*compute.VirtualMachine)(nil)).Findings).To(BeEmpty())
		Expect(l.Lint(map[string]any{"type": "x"}).Findings).To(BeEmpty())
	})

	It("should check continuation hosts", func() {
		l = lint.New(scheme.Registry, lint.Endpoint("https://management.azure.com/"))

		list := &compute.VirtualMachineListResult{NextLink: to.StringPtr("https://management.azure.com/subscriptions/s/providers/Microsoft.Compute/virtualMachines?$skiptoken=1")}
		Expect(l.Lint(list).Findings).To(BeEmpty())

		list.NextLink = to.StringPtr("https://example.com/page2")
		r := l.Lint(list)
		Expect(r.Findings).To(HaveLen(1))
		Expect(r.Findings[0].Path).To(Equal("nextLink"))

		list.NextLink = to.StringPtr("/relative")
		Expect(l.Lint(list).Findings[0].Message).To(ContainSubstring("absolute"))
	})

	It("should flag documents newer than the models", func() {
		in := strings.Join([]string{
			`{"type": "Microsoft.Compute/disks", "name": "new", "apiVersion": "2099-01-01"}`,
			`{"type": "Microsoft.Compute/disks", "name": "old", "apiVersion": "2019-07-01"}`,
			`{"type": "Microsoft.Compute/disks", "name": "bad", "apiVersion": "latest"}`,
		}, "\n---\n")
		docs, err := decoder.DecodeAll(strings.NewReader(in), scheme.Registry)
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(3))

		r := l.LintDocument(docs[0])
		Expect(r.Findings).To(HaveLen(1))
		Expect(r.Findings[0].Path).To(Equal("apiVersion"))
		Expect(r.Findings[0].Message).To(ContainSubstring(compute.APIVersion))

		Expect(l.LintDocument(docs[1]).Findings).To(BeEmpty())
		Expect(l.LintDocument(docs[2]).Findings).To(HaveLen(1))
	})
})
