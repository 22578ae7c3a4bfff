// Package render converts descriptors into their generated documents.
// Each skill unit gets two artifacts, written next to its skill.json:
// a definition document (SKILL.md) for general consumption and a rule
// document (RULE.md) shaped for editor rule ingestion. Both are pure
// functions of the descriptor, fully overwritten on every run.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kennyg/scribe/internal/descriptor"
)

const (
	// DefinitionName is the filename of the generated definition document
	DefinitionName = "SKILL.md"
	// RuleName is the filename of the generated rule document
	RuleName = "RULE.md"

	scopeMarker    = "Scope: always_on"
	triggerLead    = "Apply this rule when:"
	constraintLead = "Apply these constraints to generated output:"
	avoidLead      = "Avoid:"
	metadataMarker = "<!-- scribe:skill %s -->"
)

// frontmatter controls YAML field ordering in the definition header
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Definition renders the definition document (SKILL.md)
func Definition(d *descriptor.Descriptor) ([]byte, error) {
	fm, err := yaml.Marshal(&frontmatter{
		Name:        d.ShortName(),
		Description: d.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "version: %s\n\n", d.Version)

	b.WriteString("## Purpose\n\n")
	fmt.Fprintf(&b, "%s\n\n", d.Description)

	listSection(&b, "Triggers", d.Triggers)
	listSection(&b, "Inputs", inputItems(d.Inputs))
	listSection(&b, "Guarantees", d.Guarantees)
	listSection(&b, "Non-goals", d.NonGoals)

	b.WriteString("## Notes\n")
	if d.Notes != "" {
		b.WriteString("\n")
		b.WriteString(d.Notes)
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// Rule renders the rule document (RULE.md)
func Rule(d *descriptor.Descriptor) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (Rule)\n\n", d.Title)
	b.WriteString(scopeMarker + "\n")
	fmt.Fprintf(&b, "Version: %s\n\n", d.Version)

	b.WriteString(triggerLead + "\n")
	for _, t := range d.Triggers {
		fmt.Fprintf(&b, "- %s\n", t)
	}
	b.WriteString("\n")

	b.WriteString(constraintLead + "\n")
	for _, g := range d.Guarantees {
		fmt.Fprintf(&b, "- %s\n", g)
	}
	b.WriteString("\n")

	if d.Notes != "" {
		b.WriteString(d.Notes)
		b.WriteString("\n\n")
	}

	if len(d.NonGoals) > 0 {
		b.WriteString(avoidLead + "\n")
		for _, n := range d.NonGoals {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, metadataMarker+"\n", d.ID)

	return []byte(b.String())
}

// WriteDocs renders both documents into dir, overwriting any previous output
func WriteDocs(d *descriptor.Descriptor, dir string) error {
	definition, err := Definition(d)
	if err != nil {
		return err
	}

	defPath := filepath.Join(dir, DefinitionName)
	if err := os.WriteFile(defPath, definition, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", defPath, err)
	}

	rulePath := filepath.Join(dir, RuleName)
	if err := os.WriteFile(rulePath, Rule(d), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rulePath, err)
	}

	return nil
}

// listSection writes a "## Heading" section with one list item per entry.
// The heading is always present; an empty slice just leaves it bare.
func listSection(b *strings.Builder, heading string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	if len(items) > 0 {
		b.WriteString("\n")
	}
}

func inputItems(inputs descriptor.Inputs) []string {
	items := make([]string, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, in.Key+": "+in.Description)
	}
	return items
}
