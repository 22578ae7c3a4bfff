package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/scribe/internal/descriptor"
	"github.com/kennyg/scribe/internal/locate"
	"github.com/kennyg/scribe/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate skill descriptors",
	Long: `Check skill descriptors for required fields and version shape.

With no argument, validates every skill.json discovered under the root.
With a path argument, validates exactly that file.

Checks:
  - id, title, version, description are present and non-empty
  - version starts with a semver x.y.z triplet

Exit codes:
  0  all descriptors passed
  1  usage error (bad explicit path, nothing found)
  2  one or more descriptors failed

Examples:
  scribe validate
  scribe validate skills/go/errors/skill.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
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

	// Every descriptor is checked even when earlier ones fail. Parse
	// errors count as one failure among many, they never abort the batch.
	failed := 0
	for _, path := range paths {
		d, err := descriptor.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorLine(err.Error()))
			failed++
			continue
		}

		result := d.Validate()
		if result.OK() {
			fmt.Printf("OK %s\n", d.ID)
			continue
		}

		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, ui.ErrorLine(fmt.Sprintf("%s: %s", path, e)))
		}
		failed++
	}

	if failed > 0 {
		fmt.Fprintln(os.Stderr, ui.WarningLine(fmt.Sprintf("%d descriptor(s) failed validation", failed)))
		os.Exit(2)
	}
}
