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

var generateCmd = &cobra.Command{
	Use:     "generate [path]",
	Aliases: []string{"gen", "render"},
	Short:   "Render skill documents from descriptors",
	Long: `Render SKILL.md and RULE.md for each skill descriptor.

With no argument, renders every skill.json discovered under the root.
With a path argument, renders exactly that descriptor. Both documents
are written next to the descriptor and fully overwritten on each run.

Descriptors are validated before rendering; an invalid descriptor is
reported and skipped, it never produces a malformed document.

Examples:
  scribe generate
  scribe generate skills/go/errors/skill.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
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

	var rendered, failed int
	for _, path := range paths {
		d, err := descriptor.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorLine(err.Error()))
			failed++
			continue
		}

		if result := d.Validate(); !result.OK() {
			for _, e := range result.Errors {
				fmt.Fprintln(os.Stderr, ui.ErrorLine(fmt.Sprintf("%s: %s", path, e)))
			}
			failed++
			continue
		}

		dir := filepath.Dir(path)
		if err := render.WriteDocs(d, dir); err != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorLine(err.Error()))
			failed++
			continue
		}

		fmt.Println(ui.SuccessLine(fmt.Sprintf("%s (%s, %s)", d.ID, render.DefinitionName, render.RuleName)))
		rendered++
	}

	fmt.Println()
	fmt.Println(ui.Render(ui.Muted, fmt.Sprintf("  Rendered %d skill(s).", rendered)))

	if failed > 0 {
		fmt.Fprintln(os.Stderr, ui.WarningLine(fmt.Sprintf("%d skill(s) failed", failed)))
		os.Exit(2)
	}
}
