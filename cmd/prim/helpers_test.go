package main

import (
	"path/filepath"
	"testing"

	"prim/internal/diag"
	"prim/internal/diagfmt"
	"prim/internal/token"
)

func TestParseFailOn(t *testing.T) {
	cases := []struct {
		input   string
		level   diag.Severity
		enabled bool
		wantErr bool
	}{
		{"error", diag.SevError, true, false},
		{"warning", diag.SevWarning, true, false},
		{"never", 0, false, false},
		{"loud", 0, false, true},
	}
	for _, tc := range cases {
		level, enabled, err := parseFailOn(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseFailOn(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseFailOn(%q) error: %v", tc.input, err)
		}
		if level != tc.level || enabled != tc.enabled {
			t.Fatalf("parseFailOn(%q) = (%v, %v), want (%v, %v)", tc.input, level, enabled, tc.level, tc.enabled)
		}
	}
}

func TestBagFails(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevInfo, Code: diag.ObsTimings, Message: "timings"})
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.StyleTrailingWhitespace, Message: "trailing whitespace"})

	if bagFails(bag, diag.SevError) {
		t.Fatalf("bag without errors must not fail on the error level")
	}
	if !bagFails(bag, diag.SevWarning) {
		t.Fatalf("bag with warnings must fail on the warning level")
	}
	if got := countProblems(bag); got != 1 {
		t.Fatalf("countProblems = %d, want 1", got)
	}
}

func TestValidFormat(t *testing.T) {
	for _, format := range []string{"pretty", "short", "json", "sarif"} {
		if !validFormat(format) {
			t.Fatalf("format %q must be valid", format)
		}
	}
	if validFormat("yaml") {
		t.Fatalf("format yaml must be rejected")
	}
}

func TestDisplayResultPath(t *testing.T) {
	rel := filepath.Join("src", "main.c")
	if got := displayResultPath(rel, diagfmt.PathModeAuto); got != rel {
		t.Fatalf("auto mode = %q, want %q", got, rel)
	}
	if got := displayResultPath(rel, diagfmt.PathModeBasename); got != "main.c" {
		t.Fatalf("basename mode = %q, want main.c", got)
	}
	if got := displayResultPath(rel, diagfmt.PathModeAbsolute); !filepath.IsAbs(got) {
		t.Fatalf("absolute mode = %q, want absolute path", got)
	}
}

func TestStripTrivia(t *testing.T) {
	tokens := []token.Token{
		{
			Kind:     token.Word,
			Text:     "int",
			Leading:  []token.Trivia{{Kind: token.TriviaSpace, Text: "  "}},
			Trailing: []token.Trivia{{Kind: token.TriviaSpace, Text: " "}},
		},
	}
	stripped := stripTrivia(tokens)
	if stripped[0].Leading != nil || stripped[0].Trailing != nil {
		t.Fatalf("stripped token still carries trivia")
	}
	if stripped[0].Text != "int" || stripped[0].Kind != token.Word {
		t.Fatalf("stripped token lost its identity: %+v", stripped[0])
	}
	if tokens[0].Leading == nil {
		t.Fatalf("original tokens must stay untouched")
	}
}
