package mimetypes

import (
	"testing"
)

func TestLookup(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name string
		ext  *string
		want string
	}{
		{name: "known extension", ext: strPtr("pdf"), want: "application/pdf"},
		{name: "text", ext: strPtr("txt"), want: "text/plain"},
		{name: "nil extension", ext: nil, want: "application/octet-stream"},
		{name: "empty extension", ext: strPtr(""), want: "application/octet-stream"},
		{name: "unknown extension", ext: strPtr("zzunknownzz"), want: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Lookup(tt.ext); got != tt.want {
				t.Errorf("Lookup = %q, want %q", got, tt.want)
			}
		})
	}
}
