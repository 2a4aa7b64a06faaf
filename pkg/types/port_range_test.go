// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestParsePortRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"span", "1024-49151", "1024-49151", nil},
		{"single port", "443", "443", nil},
		{"full space", "0-65535", "0-65535", nil},
		{"collapsed span", "80-80", "80", nil},
		{"inverted", "49151-1024", "", ErrInvalidPortRange},
		{"malformed min", "abc-100", "", ErrPortFormat},
		{"malformed max", "100-", "", ErrPortFormat},
		{"out of range max", "0-65536", "", ErrPortRange},
		{"empty", "", "", ErrPortFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := ParsePortRange(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePortRange(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePortRange(%q) error: %v", tt.input, err)
			}
			if r.String() != tt.want {
				t.Errorf("ParsePortRange(%q).String() = %q, want %q", tt.input, r.String(), tt.want)
			}
		})
	}
}

func TestPortRange_Contains(t *testing.T) {
	t.Parallel()

	r := PortRange{Min: MustPort(1024), Max: MustPort(49151)}

	tests := []struct {
		port int
		want bool
	}{
		{1023, false},
		{1024, true},
		{8080, true},
		{49151, true},
		{49152, false},
	}

	for _, tt := range tests {
		p := MustPort(tt.port)
		t.Run(p.String(), func(t *testing.T) {
			t.Parallel()
			if got := r.Contains(p); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", p, got, tt.want)
			}
		})
	}
}

func TestPortRange_Options(t *testing.T) {
	t.Parallel()

	r := PortRange{Min: MustPort(1024), Max: MustPort(49151)}
	if IsPort(80, r.Options()...) {
		t.Error("IsPort(80) with registered-range options = true, want false")
	}
	if !IsPort(8080, r.Options()...) {
		t.Error("IsPort(8080) with registered-range options = false, want true")
	}
}

func TestPortRange_Validate(t *testing.T) {
	t.Parallel()

	valid := PortRange{Min: MustPort(0), Max: MustPort(1023)}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid range error: %v", err)
	}

	inverted := PortRange{Min: MustPort(2), Max: MustPort(1)}
	err := inverted.Validate()
	if !errors.Is(err, ErrInvalidPortRange) {
		t.Fatalf("Validate() error = %v, want ErrInvalidPortRange", err)
	}
	var rangeErr *InvalidPortRangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("error should be *InvalidPortRangeError, got %T", err)
	}

	if err := FullPortRange().Validate(); err != nil {
		t.Errorf("FullPortRange().Validate() error: %v", err)
	}
}
