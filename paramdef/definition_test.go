// SPDX-License-Identifier: EPL-2.0

package paramdef

import (
	"errors"
	"testing"
)

func TestDefinitionValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     Definition
		wantErr error
	}{
		{"mix_gain", Definition{Type: MixGain}, nil},
		{"demixing", Definition{Type: Demixing}, nil},
		{"recon_gain", Definition{Type: ReconGain}, nil},
		{"unsupported zero value", Definition{}, ErrUnsupportedType},
		{"unsupported out-of-range type", Definition{Type: Type(99)}, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.def.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  Type
		want string
	}{
		{MixGain, "mix_gain"},
		{Demixing, "demixing"},
		{ReconGain, "recon_gain"},
		{Unsupported, "unsupported"},
		{Type(99), "unsupported"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
