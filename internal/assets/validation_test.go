package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "notebook", wantErr: false},
		{name: "hyphenated name", input: "high-contrast", wantErr: false},
		{name: "empty name", input: "", wantErr: true},
		{name: "dot extension", input: "notebook.css", wantErr: true},
		{name: "parent traversal", input: "../etc/passwd", wantErr: true},
		{name: "forward slash", input: "sub/notebook", wantErr: true},
		{name: "backslash", input: `sub\notebook`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}
