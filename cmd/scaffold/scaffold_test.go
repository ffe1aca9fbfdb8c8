/*
Copyright 2019 Alexander Eldeib.
*/

package scaffold_test

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"

	"github.com/alexeldeib/azmodels/api/compute"
	"github.com/alexeldeib/azmodels/api/computeschedule"
	"github.com/alexeldeib/azmodels/cmd/cmdutil"
	"github.com/alexeldeib/azmodels/cmd/scaffold"
	"github.com/alexeldeib/azmodels/pkg/decoder"
	"github.com/alexeldeib/azmodels/pkg/scheme"
)

func run(args ...string) (string, error) {
	g := &cmdutil.Globals{}
	root := cmdutil.NewRootCommand("azmodels", g)
	root.AddCommand(scaffold.NewScaffoldCommand(g))
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var _ = Describe("scaffold vm", func() {
	It("should emit a document the decoder reads back", func() {
		dir, err := os.MkdirTemp("", "scaffold")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)
		keyFile := filepath.Join(dir, "id_rsa.pub")
		Expect(os.WriteFile(keyFile, []byte("ssh-rsa AAAA me@host\n"), 0o600)).To(Succeed())

		out, err := run("scaffold", "vm", "--name", "vm-x", "--size", "Standard_D4s_v6", "--zone", "3",
			"--nic", "/nic0,/nic1", "--ssh-key-file", keyFile, "--spot", "-o", "yaml")
		Expect(err).NotTo(HaveOccurred())

		docs, err := decoder.DecodeAll(bytes.NewBufferString(out), scheme.Registry, decoder.Strict())
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(1))
		vm, ok := docs[0].Object.(*compute.VirtualMachine)
		Expect(ok).To(BeTrue())
		Expect(*vm.Name).To(Equal("vm-x"))
		Expect(*vm.Properties.HardwareProfile.VMSize).To(Equal(compute.VirtualMachineSizeTypes("Standard_D4s_v6")))
		Expect(*vm.Zones[0]).To(Equal("3"))
		Expect(vm.Properties.NetworkProfile.NetworkInterfaces).To(HaveLen(2))
		Expect(*vm.Properties.Priority).To(Equal(compute.VirtualMachinePriorityTypesSpot))
		Expect(vm.Properties.OSProfile.AdminPassword).To(BeNil())
		Expect(*vm.Properties.OSProfile.LinuxConfiguration.SSH.PublicKeys[0].KeyData).To(Equal("ssh-rsa AAAA me@host"))
	})

	It("should pick a random name", func() {
		out, err := run("scaffold", "vm")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(MatchRegexp(`"name": "vm-[a-z0-9]{8}"`))
	})

	It("should fail on a missing key file", func() {
		_, err := run("scaffold", "vm", "--ssh-key-file", "testdata/does-not-exist")
		Expect(err).To(MatchError(ContainSubstring("ssh key")))
	})
})

var _ = Describe("scaffold schedule", func() {
	now := time.Date(2024, 11, 1, 17, 0, 0, 0, time.UTC)

	It("should build a submit request with a default deadline", func() {
		opts := &scaffold.ScheduleOptions{
			Action:    "deallocate",
			Resources: []string{"/vm1", "/vm2"},
			TimeZone:  "UTC",
		}
		req, err := opts.Build(now)
		Expect(err).NotTo(HaveOccurred())
		submit, ok := req.(*computeschedule.SubmitDeallocateRequest)
		Expect(ok).To(BeTrue())
		Expect(submit.Schedule.DeadLine.Time).To(BeTemporally("==", now.Add(time.Hour)))
		Expect(*submit.Schedule.DeadlineType).To(Equal(computeschedule.DeadlineTypeInitiateAt))
		Expect(submit.Resources.IDs).To(HaveLen(2))
		_, err = uuid.FromString(*submit.Correlationid)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should build execute requests", func() {
		opts := &scaffold.ScheduleOptions{
			Action:        "Hibernate",
			Resources:     []string{"/vm1"},
			Execute:       true,
			CorrelationID: "corr",
			RetryCount:    3,
		}
		req, err := opts.Build(now)
		Expect(err).NotTo(HaveOccurred())
		execute, ok := req.(*computeschedule.ExecuteHibernateRequest)
		Expect(ok).To(BeTrue())
		Expect(*execute.Correlationid).To(Equal("corr"))
		Expect(*execute.ExecutionParameters.RetryPolicy.RetryCount).To(BeEquivalentTo(3))
	})

	It("should reject bad input", func() {
		_, err := (&scaffold.ScheduleOptions{Action: "start"}).Build(now)
		Expect(err).To(MatchError(ContainSubstring("--resource")))
		_, err = (&scaffold.ScheduleOptions{Action: "reboot", Resources: []string{"/vm"}}).Build(now)
		Expect(err).To(MatchError(ContainSubstring("reboot")))
		_, err = (&scaffold.ScheduleOptions{Action: "start", Resources: []string{"/vm"}, Deadline: "tomorrow"}).Build(now)
		Expect(err).To(MatchError(ContainSubstring("deadline")))
	})

	It("should print the request as a decodable document", func() {
		out, err := run("scaffold", "schedule", "start", "--resource", "/vm1", "--deadline", "2024-11-01T18:00:00Z")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring(`"deadLine": "2024-11-01T18:00:00Z"`))

		docs, err := decoder.DecodeAll(bytes.NewBufferString(out), scheme.Registry, decoder.As("SubmitStartRequest"), decoder.Strict())
		Expect(err).NotTo(HaveOccurred())
		Expect(docs).To(HaveLen(1))
	})

	It("should only accept known actions as arguments", func() {
		_, err := run("scaffold", "schedule", "reboot", "--resource", "/vm1")
		Expect(err).To(HaveOccurred())
	})
})
