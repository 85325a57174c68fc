package backend

import (
	"errors"
	"fmt"
	"strings"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrUnknownBackend is returned by Parse for names that are not backends.
	ErrUnknownBackend = errors.New("backend: unknown backend name")
)

// Backend name constants.
const (
	// NameHardware is the name of the GPU backend (gogpu/wgpu HAL).
	NameHardware = "hardware"
	// NameSoftware is the name of the CPU rasterizer backend.
	NameSoftware = "software"
)

// Kind is the backend tag carried by every adapter, device, context and
// surface. Exactly two backends exist; the zero value is not a backend.
type Kind uint8

const (
	// Invalid is the zero Kind, reported by zero-value resources.
	Invalid Kind = iota
	// Hardware tags resources produced by backend/hardware.
	Hardware
	// Software tags resources produced by backend/software.
	Software
)

// String returns the backend name.
func (k Kind) String() string {
	switch k {
	case Hardware:
		return NameHardware
	case Software:
		return NameSoftware
	default:
		return "invalid"
	}
}

// Valid reports whether k is Hardware or Software.
func (k Kind) Valid() bool {
	return k == Hardware || k == Software
}

// Parse converts a backend name to its Kind. Matching ignores case and
// surrounding space; "hw" and "sw" are accepted as short forms.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameHardware, "hw":
		return Hardware, nil
	case NameSoftware, "sw":
		return Software, nil
	default:
		return Invalid, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// DefaultProbeOrder is the adapter probe order used when no explicit
// order is configured: hardware first, software as the fallback.
func DefaultProbeOrder() []Kind {
	return []Kind{Hardware, Software}
}

// ParseProbeOrder parses an ordered list of backend names. Duplicates are
// rejected so a probe list never tries the same backend twice.
func ParseProbeOrder(names []string) ([]Kind, error) {
	if len(names) == 0 {
		return DefaultProbeOrder(), nil
	}
	order := make([]Kind, 0, len(names))
	seen := make(map[Kind]bool, len(names))
	for _, name := range names {
		k, err := Parse(name)
		if err != nil {
			return nil, err
		}
		if seen[k] {
			return nil, fmt.Errorf("backend: %s listed twice in probe order", k)
		}
		seen[k] = true
		order = append(order, k)
	}
	return order, nil
}
