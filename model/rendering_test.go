package model

import (
	"strings"
	"testing"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{RenderText, "10\n01\n\n"},
		{"", "10\n01\n\n"},
		{RenderBlocks, gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n\n"},
	}

	for _, tt := range tests {
		var sb strings.Builder
		NewRenderer(&sb, tt.mode).Display("10\n01")
		if sb.String() != tt.want {
			t.Errorf("Display in mode %q wrote %q, want %q", tt.mode, sb.String(), tt.want)
		}
	}
}

func TestNilWriterDiscards(t *testing.T) {
	NewRenderer(nil, RenderText).Display("1")
}
