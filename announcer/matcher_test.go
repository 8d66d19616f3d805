package announcer

import (
	"testing"
)

func TestStripPrefixPackage(t *testing.T) {
	catalogue := Catalogue{
		0: {Name: "my-app"},
		1: {Name: "my-app-helper"},
		2: {Name: "other"},
	}

	tests := []struct {
		name     string
		input    string
		wantIdx  PackageIdx
		wantRest string
		wantOK   bool
	}{
		{
			name:     "single candidate",
			input:    "other-v1.0.0",
			wantIdx:  2,
			wantRest: "-v1.0.0",
			wantOK:   true,
		},
		{
			name:     "longest prefix wins over shorter overlap",
			input:    "my-app-helper-v2.0.0",
			wantIdx:  1,
			wantRest: "-v2.0.0",
			wantOK:   true,
		},
		{
			name:     "shorter name when longer does not apply",
			input:    "my-app-v1.0.0",
			wantIdx:  0,
			wantRest: "-v1.0.0",
			wantOK:   true,
		},
		{
			name:     "exact name leaves empty remainder",
			input:    "my-app-helper",
			wantIdx:  1,
			wantRest: "",
			wantOK:   true,
		},
		{
			name:   "no package matches",
			input:  "v1.0.0",
			wantOK: false,
		},
		{
			name:   "name mid-string does not match",
			input:  "prefix-my-app",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, rest, ok := stripPrefixPackage(tt.input, catalogue)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if idx != tt.wantIdx {
				t.Errorf("expected package %d, got %d", tt.wantIdx, idx)
			}
			if rest != tt.wantRest {
				t.Errorf("expected remainder %q, got %q", tt.wantRest, rest)
			}
		})
	}
}

func TestStripPrefixPackage_EmptyCatalogue(t *testing.T) {
	if _, _, ok := stripPrefixPackage("my-app-v1.0.0", Catalogue{}); ok {
		t.Error("expected no match against an empty catalogue")
	}
	if _, _, ok := stripPrefixPackage("my-app-v1.0.0", nil); ok {
		t.Error("expected no match against a nil catalogue")
	}
}
