/*
Copyright 2019 Alexander Eldeib.
*/

package config_test

import (
	"os"

	"github.com/Azure/go-autorest/autorest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/alexeldeib/azmodels/pkg/config"
)

var _ = Describe("config", func() {
	It("should default to the public cloud and json", func() {
		c, err := config.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Endpoint()).To(Equal("https://management.azure.com/"))
		Expect(c.Output()).To(Equal(config.OutputJSON))
		Expect(c.Indent()).To(Equal(2))
		Expect(c.Strict()).To(BeFalse())
		Expect(c.Debug()).To(BeFalse())
	})

	It("should select sovereign clouds", func() {
		c, err := config.New(config.Cloud("AzureUSGovernmentCloud"))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Endpoint()).To(Equal("https://management.usgovcloudapi.net/"))
	})

	It("should reject bad settings", func() {
		_, err := config.New(config.Cloud("Narnia"))
		Expect(err).To(MatchError(ContainSubstring("Narnia")))
		_, err = config.New(config.Output("xml"))
		Expect(err).To(MatchError(ContainSubstring("xml")))
		_, err = config.New(config.Indent(-1))
		Expect(err).To(HaveOccurred())
	})

	It("should add the user agent to clients", func() {
		c, err := config.New(config.UserAgent("azmodels-test"))
		Expect(err).NotTo(HaveOccurred())
		client := autorest.NewClientWithUserAgent("")
		Expect(c.ConfigureClient(&client)).To(Succeed())
		Expect(client.UserAgent).To(ContainSubstring("azmodels-test"))
	})

	Context("from the environment", func() {
		BeforeEach(func() {
			for _, name := range []string{config.EnvOutput, config.EnvStrict, config.EnvDebug, config.EnvCloud} {
				os.Unsetenv(name)
			}
		})

		AfterEach(func() {
			for _, name := range []string{config.EnvOutput, config.EnvStrict, config.EnvDebug, config.EnvCloud} {
				os.Unsetenv(name)
			}
		})

		It("should read variables and let later options win", func() {
			os.Setenv(config.EnvOutput, "YAML")
			os.Setenv(config.EnvStrict, "true")
			os.Setenv(config.EnvDebug, "1")
			opts, err := config.FromEnvironment()
			Expect(err).NotTo(HaveOccurred())
			c, err := config.New(append(opts, config.Debug(false))...)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Output()).To(Equal(config.OutputYAML))
			Expect(c.Strict()).To(BeTrue())
			Expect(c.Debug()).To(BeFalse())
		})

		It("should reject invalid booleans", func() {
			os.Setenv(config.EnvStrict, "sometimes")
			_, err := config.FromEnvironment()
			Expect(err).To(MatchError(ContainSubstring(config.EnvStrict)))
		})

		It("should return nothing when unset", func() {
			opts, err := config.FromEnvironment()
			Expect(err).NotTo(HaveOccurred())
			Expect(opts).To(BeEmpty())
		})
	})
})
