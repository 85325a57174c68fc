package surfman

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/surfman/backend"
	"github.com/gogpu/surfman/backend/hardware"
	"github.com/gogpu/surfman/backend/software"
	"gopkg.in/yaml.v3"
)

// Config is the startup backend configuration, usually read from a YAML
// file:
//
//	probe: [hardware, software]
//	hardware:
//	  backends: [vulkan, gl]
//	software:
//	  max_surface_size: 8192
type Config struct {
	// Probe is the order in which SelectAdapter tries backends.
	// Empty means hardware, then software.
	Probe    []string       `yaml:"probe,omitempty"`
	Hardware HardwareConfig `yaml:"hardware"`
	Software SoftwareConfig `yaml:"software"`
}

// HardwareConfig configures hardware adapter discovery.
type HardwareConfig struct {
	// Backends lists the HAL backends to probe: vulkan, metal, dx12, gl.
	// Empty means all of them.
	Backends []string `yaml:"backends,omitempty"`
}

// SoftwareConfig configures the software adapter.
type SoftwareConfig struct {
	// MaxSurfaceSize limits surface width and height. 0 keeps the default.
	MaxSurfaceSize int `yaml:"max_surface_size,omitempty"`

	// Disabled forbids CPU rendering.
	Disabled bool `yaml:"disabled,omitempty"`
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("surfman: invalid config %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("surfman: invalid config %s %q", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

var halBackends = map[string]gputypes.Backend{
	"vulkan": gputypes.BackendVulkan,
	"metal":  gputypes.BackendMetal,
	"dx12":   gputypes.BackendDX12,
	"gl":     gputypes.BackendGL,
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		Probe: []string{backend.NameHardware, backend.NameSoftware},
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("surfman: failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML configuration data. Missing
// fields keep their DefaultConfig values.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("surfman: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field of c.
func (c *Config) Validate() error {
	if _, err := c.ProbeOrder(); err != nil {
		return err
	}
	_, err := c.Options()
	return err
}

// ProbeOrder returns the parsed probe order.
func (c *Config) ProbeOrder() ([]backend.Kind, error) {
	order, err := backend.ParseProbeOrder(c.Probe)
	if err != nil {
		return nil, &ConfigError{Field: "probe", Value: strings.Join(c.Probe, ","), Err: err}
	}
	return order, nil
}

// Options returns the adapter options c describes.
func (c *Config) Options() ([]AdapterOption, error) {
	var opts []AdapterOption

	if len(c.Hardware.Backends) > 0 {
		backends := make([]gputypes.Backend, 0, len(c.Hardware.Backends))
		for _, name := range c.Hardware.Backends {
			b, ok := halBackends[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return nil, &ConfigError{Field: "hardware.backends", Value: name}
			}
			backends = append(backends, b)
		}
		opts = append(opts, WithHardwareOptions(hardware.WithBackends(backends...)))
	}

	if c.Software.MaxSurfaceSize < 0 {
		return nil, &ConfigError{
			Field: "software.max_surface_size",
			Value: fmt.Sprint(c.Software.MaxSurfaceSize),
			Err:   errors.New("must not be negative"),
		}
	}
	var sw []software.Option
	if c.Software.MaxSurfaceSize > 0 {
		sw = append(sw, software.WithMaxSurfaceDimension(c.Software.MaxSurfaceSize))
	}
	if c.Software.Disabled {
		sw = append(sw, software.WithDisabled())
	}
	if len(sw) > 0 {
		opts = append(opts, WithSoftwareOptions(sw...))
	}
	return opts, nil
}
