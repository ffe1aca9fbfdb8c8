package stringutil_test

import (
	"encoding/base64"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/pkg/stringutil"
)

var _ = Describe("random strings", func() {
	It("should encode n random bytes", func() {
		s, err := stringutil.GenerateRandomBytes(32)
		Expect(err).NotTo(HaveOccurred())
		raw, err := base64.URLEncoding.DecodeString(s)
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(HaveLen(32))
	})

	It("should draw from the alphabet", func() {
		Expect(stringutil.GenerateRandomStringFromAlphabet(64, "ab")).To(MatchRegexp(`^[ab]{64}$`))
		Expect(stringutil.GenerateLowerCaseAlphaNumeric(12)).To(MatchRegexp(`^[a-z0-9]{12}$`))
		Expect(stringutil.GenerateLowerCaseAlphaNumeric(0)).To(BeEmpty())
	})
})
