package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kennyg/scribe/internal/descriptor"
	"github.com/kennyg/scribe/internal/locate"
	"github.com/kennyg/scribe/internal/render"
	"github.com/kennyg/scribe/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [path]",
	Short: "Check the health of skill units",
	Long: `Diagnose every skill unit under the root.

For each unit, checks that the descriptor parses and validates, that
both rendered documents exist, and that neither is older than the
descriptor (stale output).

Examples:
  scribe doctor
  scribe doctor skills/go/errors/skill.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}

	paths, err := locate.Resolve(rootDir, explicit)
	if err != nil {
		exitWithError(err.Error())
	}
	if len(paths) == 0 {
		exitWithError(fmt.Sprintf("no descriptors found under %s", rootDir))
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Diagnosing"))
	fmt.Println()

	healthy := true
	for _, path := range paths {
		if !checkUnit(path) {
			healthy = false
		}
		fmt.Println()
	}

	if healthy {
		fmt.Println(ui.SuccessLine("All skill units are healthy"))
	} else {
		fmt.Println(ui.WarningLine("Some units need attention"))
	}
	fmt.Println(ui.PageFooter())

	if !healthy {
		os.Exit(2)
	}
}

// checkUnit diagnoses one unit and reports whether it is fully healthy
func checkUnit(path string) bool {
	unitDir := filepath.Dir(path)

	d, err := descriptor.Load(path)
	if err != nil {
		fmt.Printf("  %s %s\n", ui.Render(ui.Error, "✗"), unitDir)
		fmt.Println(ui.Render(ui.Muted, "    "+err.Error()))
		return false
	}

	ok := true
	var problems []string

	if result := d.Validate(); !result.OK() {
		ok = false
		problems = append(problems, result.Errors...)
	}

	descInfo, statErr := os.Stat(path)
	for _, name := range []string{render.DefinitionName, render.RuleName} {
		docPath := filepath.Join(unitDir, name)
		docInfo, err := os.Stat(docPath)
		if err != nil {
			ok = false
			problems = append(problems, fmt.Sprintf("%s not rendered", name))
			continue
		}
		if statErr == nil && docInfo.ModTime().Before(descInfo.ModTime()) {
			ok = false
			problems = append(problems, fmt.Sprintf("%s is older than the descriptor (stale)", name))
		}
	}

	label := d.ID
	if label == "" {
		label = unitDir
	}

	if ok {
		fmt.Printf("  %s %s\n", ui.Render(ui.Success, "✓"), label)
		fmt.Println(ui.Render(ui.Muted, "    descriptor valid, documents rendered"))
		return true
	}

	fmt.Printf("  %s %s\n", ui.Render(ui.Error, "✗"), label)
	for _, p := range problems {
		fmt.Println(ui.Render(ui.Muted, "    "+p))
	}
	return false
}
