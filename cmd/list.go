package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kennyg/scribe/internal/descriptor"
	"github.com/kennyg/scribe/internal/locate"
	"github.com/kennyg/scribe/internal/render"
	"github.com/kennyg/scribe/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List discovered skill descriptors",
	Long:    `Display every skill descriptor under the root, with its validity and rendered documents.`,
	Run:     runList,
}

func runList(cmd *cobra.Command, args []string) {
	paths, err := locate.Discover(rootDir)
	if err != nil {
		exitWithError(err.Error())
	}

	if len(paths) == 0 {
		fmt.Println()
		fmt.Println(ui.Render(ui.Muted, "  No skills found under "+rootDir+"."))
		fmt.Println(ui.Render(ui.Muted, "  Use 'scribe init <id>' to scaffold one."))
		fmt.Println()
		return
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Skills"))
	fmt.Println()

	count := lipgloss.NewStyle().Foreground(ui.DarkGray).Render(fmt.Sprintf("(%d)", len(paths)))
	fmt.Printf("  %s %s\n", ui.SkillBadge(), count)
	fmt.Println()

	var valid, invalid int
	for _, path := range paths {
		unitDir := filepath.Dir(path)

		d, err := descriptor.Load(path)
		if err != nil {
			fmt.Printf("  %s %s\n", ui.StatusError(), unitDir)
			fmt.Printf("    %s\n", ui.Render(ui.Warning, err.Error()))
			fmt.Println()
			invalid++
			continue
		}

		result := d.Validate()
		status := ui.StatusOK()
		if !result.OK() {
			status = ui.StatusError()
		}

		name := lipgloss.NewStyle().Foreground(ui.White).Bold(true).Render(d.ID)
		version := ui.Render(ui.Muted, d.Version)
		fmt.Printf("  %s %s %s\n", status, name, version)

		if d.Description != "" {
			fmt.Printf("    %s\n", ui.Render(ui.Muted, d.Description))
		}
		for _, e := range result.Errors {
			fmt.Printf("    %s\n", ui.Render(ui.Warning, e))
		}

		docs := renderedDocs(unitDir)
		if docs != "" {
			fmt.Printf("    %s\n", ui.Render(ui.Info, docs))
		}
		fmt.Println()

		if result.OK() {
			valid++
		} else {
			invalid++
		}
	}

	footer := fmt.Sprintf("  %d skill(s): %d valid, %d invalid", valid+invalid, valid, invalid)
	fmt.Println(lipgloss.NewStyle().Foreground(ui.DarkGray).Render(footer))
	fmt.Println(ui.PageFooter())
}

// renderedDocs reports which generated documents exist for a unit
func renderedDocs(unitDir string) string {
	var docs []string
	for _, name := range []string{render.DefinitionName, render.RuleName} {
		if fileExists(filepath.Join(unitDir, name)) {
			docs = append(docs, name)
		}
	}
	if len(docs) == 0 {
		return ""
	}
	out := "rendered: "
	for i, doc := range docs {
		if i > 0 {
			out += ", "
		}
		out += doc
	}
	return out
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
