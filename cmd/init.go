package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kennyg/scribe/internal/descriptor"
	"github.com/kennyg/scribe/internal/ui"
)

var initCmd = &cobra.Command{
	Use:     "init <id>",
	Aliases: []string{"new", "create"},
	Short:   "Scaffold a new skill descriptor",
	Long: `Create a new skill unit directory with a starter skill.json.

The unit directory is derived from the id's last dot-separated segment
and created under the skills root.

Examples:
  scribe init go.errors
  scribe init go.errors --title "Error Handling" --description "Idiomatic Go error handling"`,
	Args: cobra.ExactArgs(1),
	Run:  runInit,
}

var (
	initTitle       string
	initDescription string
)

func init() {
	initCmd.Flags().StringVarP(&initTitle, "title", "t", "", "Human-readable skill name (defaults to the id's short name)")
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "One-line summary")
}

func runInit(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(ui.SectionHeader("New Skill"))
	fmt.Println()

	d := &descriptor.Descriptor{
		ID:          args[0],
		Title:       initTitle,
		Version:     "0.1.0",
		Description: initDescription,
		Triggers:    []string{"describe when this skill applies"},
		Guarantees:  []string{"describe a behavioral commitment"},
	}
	if d.Title == "" {
		d.Title = d.ShortName()
	}
	if d.Description == "" {
		d.Description = "TODO: one-line summary"
	}

	unitDir := filepath.Join(rootDir, d.ShortName())
	descPath := filepath.Join(unitDir, descriptor.DescriptorName)

	if _, err := os.Stat(descPath); err == nil {
		exitWithError(fmt.Sprintf("%s already exists", descPath))
	}

	if err := os.MkdirAll(unitDir, 0755); err != nil {
		exitWithError(fmt.Sprintf("failed to create %s: %v", unitDir, err))
	}
	fmt.Println(ui.Render(ui.Muted, "  Created "+unitDir+"/"))

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		exitWithError(fmt.Sprintf("failed to generate descriptor: %v", err))
	}
	if err := os.WriteFile(descPath, append(data, '\n'), 0644); err != nil {
		exitWithError(fmt.Sprintf("failed to write %s: %v", descPath, err))
	}
	fmt.Println(ui.Render(ui.Muted, "  Created "+descPath))

	fmt.Println()
	fmt.Println(ui.SuccessLine("Skill scaffolded"))
	fmt.Println()
	fmt.Println(ui.Render(ui.Muted, "  Next steps:"))
	fmt.Println(ui.Render(ui.Muted, "    1. Edit "+descPath))
	fmt.Println(ui.Render(ui.Muted, "    2. Run 'scribe validate' to check it"))
	fmt.Println(ui.Render(ui.Muted, "    3. Run 'scribe generate' to render its documents"))
	fmt.Println(ui.PageFooter())
}
