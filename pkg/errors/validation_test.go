package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid city name", "Glogow", false},
		{"valid numeric id", "42", false},
		{"valid with spaces", "Zielona Gora", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"max length ok", strings.Repeat("a", 256), false},
		{"control character", "node\x01id", true},
		{"null byte", "node\x00id", true},
		{"newline", "node\nid", true},
		{"tab", "node\tid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT code, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple filename", "out.svg", false},
		{"relative path", "renders/out.dot", false},
		{"absolute path", "/tmp/out.svg", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "out\x00.svg", true},
		{"control character", "out\x1b.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTiles(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{"comma separated", "3,1,5,8", []int{3, 1, 5, 8}, false},
		{"space separated", "3 1 5 8", []int{3, 1, 5, 8}, false},
		{"mixed separators", "3, 1,  5,8", []int{3, 1, 5, 8}, false},
		{"single value", "5", []int{5}, false},
		{"negative value parses", "-2", []int{-2}, false},
		{"empty", "", nil, true},
		{"only separators", " , , ", nil, true},
		{"non-numeric", "3,x,5", nil, true},
		{"float rejected", "3.5", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTiles(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTiles(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ValidateTiles(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ValidateTiles(%q)[%d] = %d, want %d", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}
