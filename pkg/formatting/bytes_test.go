package formatting_test

import (
	"testing"

	"github.com/clarity-counsel/counsel/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"50MB", 50 * 1024 * 1024, false},
		{"1 KB", 1024, false},
		{"2gb", 2 * 1024 * 1024 * 1024, false},
		{"1024", 1024, false},
		{"", 0, true},
		{"fifty MB", 0, true},
		{"10 XB", 0, true},
	}

	for _, tt := range tests {
		got, err := formatting.ParseBytes(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBytes(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBytes(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 2, "0 B"},
		{512, 0, "512 B"},
		{1536, 1, "1.5 KB"},
		{50 * 1024 * 1024, 0, "50 MB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
		}
	}
}
