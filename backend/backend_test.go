package backend

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Hardware, "hardware"},
		{Software, "software"},
		{Invalid, "invalid"},
		{Kind(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindValid(t *testing.T) {
	if !Hardware.Valid() || !Software.Valid() {
		t.Error("Hardware and Software should be valid")
	}
	if Invalid.Valid() {
		t.Error("Invalid.Valid() = true, want false")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{"hardware", Hardware, false},
		{"  Hardware ", Hardware, false},
		{"hw", Hardware, false},
		{"software", Software, false},
		{"SW", Software, false},
		{"vulkan", Invalid, true},
		{"", Invalid, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownBackend) {
				t.Errorf("Parse(%q) error = %v, want ErrUnknownBackend", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseProbeOrder(t *testing.T) {
	order, err := ParseProbeOrder(nil)
	if err != nil {
		t.Fatalf("ParseProbeOrder(nil) error = %v", err)
	}
	if len(order) != 2 || order[0] != Hardware || order[1] != Software {
		t.Errorf("ParseProbeOrder(nil) = %v, want [hardware software]", order)
	}

	order, err = ParseProbeOrder([]string{"software"})
	if err != nil {
		t.Fatalf("ParseProbeOrder([software]) error = %v", err)
	}
	if len(order) != 1 || order[0] != Software {
		t.Errorf("ParseProbeOrder([software]) = %v, want [software]", order)
	}

	if _, err := ParseProbeOrder([]string{"software", "sw"}); err == nil {
		t.Error("ParseProbeOrder with duplicate should fail")
	}
	if _, err := ParseProbeOrder([]string{"hardware", "metal"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("ParseProbeOrder with unknown name error = %v, want ErrUnknownBackend", err)
	}
}
