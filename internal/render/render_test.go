package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kennyg/scribe/internal/descriptor"
)

func sample() *descriptor.Descriptor {
	return &descriptor.Descriptor{
		ID:          "ns.sample",
		Title:       "Sample",
		Version:     "0.1.0",
		Description: "desc",
		Triggers:    []string{"t1"},
		Guarantees:  []string{"g1"},
		NonGoals:    []string{"n1"},
	}
}

func TestDefinitionContent(t *testing.T) {
	out, err := Definition(sample())
	if err != nil {
		t.Fatalf("Definition() error = %v", err)
	}
	text := string(out)

	wantLines := []string{
		"name: sample",
		"description: desc",
		"# Sample",
		"version: 0.1.0",
		"## Purpose",
		"## Triggers",
		"- t1",
		"## Guarantees",
		"- g1",
		"## Non-goals",
		"- n1",
		"## Notes",
	}
	for _, line := range wantLines {
		if !containsLine(text, line) {
			t.Errorf("definition missing line %q\n%s", line, text)
		}
	}
}

func TestDefinitionFrontmatterFirst(t *testing.T) {
	out, err := Definition(sample())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "---\n") {
		t.Errorf("definition does not start with frontmatter:\n%s", out)
	}
}

func TestDefinitionListOrder(t *testing.T) {
	d := sample()
	d.Triggers = []string{"a", "b"}

	out, err := Definition(d)
	if err != nil {
		t.Fatal(err)
	}
	text := string(out)

	ia := strings.Index(text, "- a\n")
	ib := strings.Index(text, "- b\n")
	if ia == -1 || ib == -1 || ia > ib {
		t.Errorf("triggers out of order (a at %d, b at %d):\n%s", ia, ib, text)
	}
}

func TestDefinitionInputsOrder(t *testing.T) {
	d := sample()
	d.Inputs = descriptor.Inputs{
		{Key: "zeta", Description: "z desc"},
		{Key: "alpha", Description: "a desc"},
	}

	out, err := Definition(d)
	if err != nil {
		t.Fatal(err)
	}
	text := string(out)

	iz := strings.Index(text, "- zeta: z desc")
	ia := strings.Index(text, "- alpha: a desc")
	if iz == -1 || ia == -1 || iz > ia {
		t.Errorf("inputs out of insertion order:\n%s", text)
	}
}

func TestRuleContent(t *testing.T) {
	text := string(Rule(sample()))

	wantLines := []string{
		"# Sample (Rule)",
		"Scope: always_on",
		"Version: 0.1.0",
		"Apply this rule when:",
		"- t1",
		"Apply these constraints to generated output:",
		"- g1",
		"Avoid:",
		"- n1",
		"<!-- scribe:skill ns.sample -->",
	}
	for _, line := range wantLines {
		if !containsLine(text, line) {
			t.Errorf("rule missing line %q\n%s", line, text)
		}
	}
}

func TestRuleNotesBeforeAvoid(t *testing.T) {
	d := sample()
	d.Notes = "free-text notes"

	text := string(Rule(d))

	iGuarantee := strings.Index(text, "- g1")
	iNotes := strings.Index(text, "free-text notes")
	iAvoid := strings.Index(text, "Avoid:")
	if iNotes == -1 {
		t.Fatalf("notes missing:\n%s", text)
	}
	if !(iGuarantee < iNotes && iNotes < iAvoid) {
		t.Errorf("notes not between guarantees and avoid block:\n%s", text)
	}
}

func TestRuleOmitsAvoidWhenEmpty(t *testing.T) {
	d := sample()
	d.NonGoals = nil

	text := string(Rule(d))
	if strings.Contains(text, "Avoid:") {
		t.Errorf("Avoid block present despite empty non_goals:\n%s", text)
	}
}

func TestEmptyOptionalFields(t *testing.T) {
	d := &descriptor.Descriptor{
		ID:          "ns.minimal",
		Title:       "Minimal",
		Version:     "1.0.0",
		Description: "bare",
	}

	out, err := Definition(d)
	if err != nil {
		t.Fatalf("Definition() error = %v", err)
	}
	text := string(out)

	// Sections are present but carry no list items
	for _, heading := range []string{"## Triggers", "## Inputs", "## Guarantees", "## Non-goals", "## Notes"} {
		if !containsLine(text, heading) {
			t.Errorf("definition missing heading %q", heading)
		}
	}
	if strings.Contains(text, "\n- ") {
		t.Errorf("definition has unexpected list items:\n%s", text)
	}

	rule := string(Rule(d))
	if strings.Contains(rule, "Avoid:") {
		t.Errorf("rule has Avoid block for empty non_goals:\n%s", rule)
	}
}

func TestRenderIdempotent(t *testing.T) {
	d := sample()
	d.Notes = "stable"

	first, err := Definition(d)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Definition(d)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Definition() output differs between runs")
	}

	if !bytes.Equal(Rule(d), Rule(d)) {
		t.Error("Rule() output differs between runs")
	}
}

func TestWriteDocs(t *testing.T) {
	dir := t.TempDir()
	d := sample()

	if err := WriteDocs(d, dir); err != nil {
		t.Fatalf("WriteDocs() error = %v", err)
	}

	for _, name := range []string{DefinitionName, RuleName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	// Full overwrite on re-render
	d.Description = "changed"
	if err := WriteDocs(d, dir); err != nil {
		t.Fatalf("WriteDocs() rerun error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, DefinitionName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "changed") {
		t.Error("definition not overwritten on re-render")
	}
}

func containsLine(text, line string) bool {
	for _, l := range strings.Split(text, "\n") {
		if l == line {
			return true
		}
	}
	return false
}
