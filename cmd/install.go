package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/scribe/internal/install"
	"github.com/kennyg/scribe/internal/ui"
)

var installCmd = &cobra.Command{
	Use:   "install <destination>",
	Short: "Install rendered skill documents into a project",
	Long: `Install rendered skill documents into a target project.

The destination may be a project root, a tool root (.claude or .cursor),
or the exact target directory; the standard subdirectories are appended
as needed.

Conventions:
  claude   skill directories, .claude/skills/<name>/SKILL.md
  cursor   rule files, .cursor/rules/<name>.md

A unit whose rendered document is missing is skipped with a warning.

Examples:
  scribe install ~/work/myproject
  scribe install ~/work/myproject --tool cursor
  scribe install ~/work/myproject/.claude --symlink
  scribe install ~/work/myproject --source skills/go --with-reference`,
	Args: cobra.ExactArgs(1),
	Run:  runInstall,
}

var (
	installSource    string
	installTool      string
	installSymlink   bool
	installReference bool
)

func init() {
	installCmd.Flags().StringVarP(&installSource, "source", "s", "", "Source subtree to install from (default: the skills root)")
	installCmd.Flags().StringVarP(&installTool, "tool", "t", "claude", "Target tool convention (claude, cursor)")
	installCmd.Flags().BoolVar(&installSymlink, "symlink", false, "Symlink documents instead of copying")
	installCmd.Flags().BoolVar(&installReference, "with-reference", false, "Also install group REFERENCE.md documents")
}

func runInstall(cmd *cobra.Command, args []string) {
	convention := install.Convention(installTool)
	if !convention.IsValid() {
		exitWithError(fmt.Sprintf("invalid tool convention: %s (valid: claude, cursor)", installTool))
	}

	source := installSource
	if source == "" {
		source = rootDir
	}

	result, err := install.Run(install.Options{
		Source:        source,
		Dest:          args[0],
		Convention:    convention,
		Symlink:       installSymlink,
		WithReference: installReference,
	})
	if err != nil {
		exitWithError(err.Error())
	}

	for _, warning := range result.Skipped {
		fmt.Println(ui.WarningLine(warning))
	}
	for _, target := range result.Installed {
		fmt.Println(ui.SuccessLine("installed " + target))
	}
	for _, ref := range result.References {
		fmt.Println(ui.SuccessLine("installed " + ref))
	}

	fmt.Println()
	fmt.Println(ui.Render(ui.Muted, fmt.Sprintf("  Installed %d skill(s), skipped %d.", len(result.Installed), len(result.Skipped))))
}
