/*
Copyright 2019 Alexander Eldeib.
*/

// Package config holds settings shared by the azmodels commands.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/pkg/errors"
)

// Output formats understood by the printer.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Environment variables read by FromEnvironment.
const (
	EnvOutput = "AZMODELS_OUTPUT"
	EnvStrict = "AZMODELS_STRICT"
	EnvDebug  = "AZMODELS_DEBUG"
	EnvCloud  = "AZURE_ENVIRONMENT"
)

// Config holds the configured useragent, cloud environment and output
// settings. The environment identifies which resource manager endpoint
// documents and prepared requests should point at, e.g. in sovereign clouds.
type Config struct {
	userAgent string
	cloud     string
	env       azure.Environment
	output    string
	indent    int
	strict    bool
	debug     bool
}

type Option func(*Config)

// New applies opts over the defaults: public cloud, JSON output indented by
// two spaces, lenient decoding.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		userAgent: "azmodels",
		cloud:     azure.PublicCloud.Name,
		output:    OutputJSON,
		indent:    2,
	}

	for _, opt := range opts {
		opt(c)
	}

	env, err := azure.EnvironmentFromName(c.cloud)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown cloud %q", c.cloud)
	}
	c.env = env

	switch c.output {
	case OutputJSON, OutputYAML:
	default:
		return nil, errors.Errorf("unsupported output format %q, expected %s or %s", c.output, OutputJSON, OutputYAML)
	}
	if c.indent < 0 {
		return nil, errors.Errorf("indent must not be negative, got %d", c.indent)
	}
	return c, nil
}

// FromEnvironment returns options for every azmodels variable that is set.
// Apply them before flag options so flags win.
func FromEnvironment() ([]Option, error) {
	var opts []Option
	if v, ok := os.LookupEnv(EnvOutput); ok && v != "" {
		opts = append(opts, Output(strings.ToLower(v)))
	}
	if v, ok := os.LookupEnv(EnvCloud); ok && v != "" {
		opts = append(opts, Cloud(v))
	}
	for name, set := range map[string]func(bool) Option{EnvStrict: Strict, EnvDebug: Debug} {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value for %s", name)
		}
		opts = append(opts, set(b))
	}
	return opts, nil
}

// UserAgent sets the user agent on prepared Azure SDK requests.
func UserAgent(userAgent string) Option {
	return func(c *Config) {
		c.userAgent = userAgent
	}
}

// Cloud selects the Azure environment by name, e.g. AzureUSGovernmentCloud.
func Cloud(name string) Option {
	return func(c *Config) {
		c.cloud = name
	}
}

// Output selects the document output format.
func Output(format string) Option {
	return func(c *Config) {
		c.output = format
	}
}

// Indent sets the indentation width of JSON output. Zero prints compact JSON.
func Indent(n int) Option {
	return func(c *Config) {
		c.indent = n
	}
}

// Strict rejects undeclared fields on decode and fails lint on any finding.
func Strict(strict bool) Option {
	return func(c *Config) {
		c.strict = strict
	}
}

// Debug enables development logging.
func Debug(debug bool) Option {
	return func(c *Config) {
		c.debug = debug
	}
}

func (c *Config) UserAgent() string {
	return c.userAgent
}

func (c *Config) Environment() azure.Environment {
	return c.env
}

// Endpoint is the resource manager endpoint of the configured cloud.
func (c *Config) Endpoint() string {
	return c.env.ResourceManagerEndpoint
}

func (c *Config) Output() string {
	return c.output
}

func (c *Config) Indent() int {
	return c.indent
}

func (c *Config) Strict() bool {
	return c.strict
}

func (c *Config) Debug() bool {
	return c.debug
}

// ConfigureClient adds the configured user agent to an SDK client.
func (c *Config) ConfigureClient(client *autorest.Client) error {
	return client.AddToUserAgent(c.userAgent)
}
