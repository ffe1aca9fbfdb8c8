/*
Copyright 2019 Alexander Eldeib.
*/

package main

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func execute(args ...string) (string, error) {
	root := NewRootCommand("v0.1.0")
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var _ = Describe("root", func() {
	It("should print the version", func() {
		out, err := execute("version")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Version: v0.1.0\n"))
	})

	It("should list enum families", func() {
		out, err := execute("enums")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("CachingTypes\tclosed\t3 values"))
		Expect(out).To(ContainSubstring("OperationState\topen\t9 values\tdefault \"Unknown\""))
		Expect(out).To(ContainSubstring("StorageAccountTypes\topen\t"))
	})

	It("should list the values of one family in declaration order", func() {
		out, err := execute("enums", "OperationState")
		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimSpace(out), "\n")
		Expect(lines).To(HaveLen(9))
		Expect(lines[0]).To(Equal("Unknown"))
		Expect(lines[8]).To(Equal("Blocked"))
	})

	It("should reject unknown families", func() {
		_, err := execute("enums", "Nope")
		Expect(err).To(MatchError(ContainSubstring(`unknown enum family "Nope"`)))
	})

	It("should reject a bad output format before running", func() {
		_, err := execute("enums", "-o", "xml")
		Expect(err).To(MatchError(ContainSubstring("xml")))
	})
})
