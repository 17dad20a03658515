package rules_test

import (
	"strings"
	"testing"

	"prim/internal/diag"
	"prim/internal/rules"
)

func TestTooManyBlankLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		limit   int
		spans   [][2]uint32
		fixed   string
	}{
		{
			name:    "one line over the limit",
			content: "x\n\n\n\ny\n",
			limit:   2,
			spans:   [][2]uint32{{4, 5}},
			fixed:   "x\n\n\ny\n",
		},
		{
			name:    "two lines over the limit",
			content: "x\n\n\n\ny\n",
			limit:   1,
			spans:   [][2]uint32{{3, 5}},
			fixed:   "x\n\ny\n",
		},
		{
			name:    "at the limit",
			content: "x\n\ny\n",
			limit:   1,
			spans:   nil,
			fixed:   "x\n\ny\n",
		},
		{
			name:    "run at file start counts from the first line",
			content: "\n\n\n\nx\n",
			limit:   2,
			spans:   [][2]uint32{{2, 4}},
			fixed:   "\n\nx\n",
		},
		{
			name:    "run after conditional directive counts from the first line",
			content: "#endif\n\n\n\nx\n",
			limit:   2,
			spans:   [][2]uint32{{9, 10}},
			fixed:   "#endif\n\n\nx\n",
		},
		{
			name:    "comment splits the run",
			content: "x\n\n// c\n\ny\n",
			limit:   1,
			spans:   nil,
			fixed:   "x\n\n// c\n\ny\n",
		},
		{
			name:    "whitespace inside the run goes with it",
			content: "x\n\n  \n\ny\n",
			limit:   1,
			spans:   [][2]uint32{{3, 7}},
			fixed:   "x\n\ny\n",
		},
		{
			name:    "include line is ordinary content",
			content: "#include <a.h>\n\n\nx\n",
			limit:   1,
			spans:   [][2]uint32{{16, 17}},
			fixed:   "#include <a.h>\n\nx\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := rules.DefaultConfig()
			cfg.MaxBlankLines = tt.limit
			bag := checkSource(t, rules.TooManyBlankLines{}, tt.content, cfg)
			expectSpans(t, bag, diag.StyleTooManyBlankLines, tt.spans)
			if got := applyFixes(t, tt.content, bag); got != tt.fixed {
				t.Errorf("fixed = %q, want %q", got, tt.fixed)
			}
		})
	}
}

func TestTooManyBlankLinesMessage(t *testing.T) {
	bag := checkSource(t, rules.TooManyBlankLines{}, "x\n\n\n\n\ny\n", rules.DefaultConfig())
	if bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", bag.Len())
	}
	msg := bag.Items()[0].Message
	if !strings.Contains(msg, "4 consecutive blank lines") || !strings.Contains(msg, "limit is 2") {
		t.Errorf("message %q should name the count and the limit", msg)
	}
}
