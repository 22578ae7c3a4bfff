// Package install places rendered skill documents into a target
// project's assistant configuration directory. One implementation
// covers both supported tool conventions; the convention parameter
// selects the layout and the per-unit completeness check.
package install

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kennyg/scribe/internal/descriptor"
	"github.com/kennyg/scribe/internal/locate"
	"github.com/kennyg/scribe/internal/render"
)

// ReferenceName is the optional shared document of a skill group,
// expected in the parent directory of the group's units
const ReferenceName = "REFERENCE.md"

// Convention identifies a target tool's expected layout
type Convention string

const (
	// ConventionClaude installs skill directories (.claude/skills/<name>/SKILL.md)
	ConventionClaude Convention = "claude"
	// ConventionCursor installs rule files (.cursor/rules/<name>.md)
	ConventionCursor Convention = "cursor"
)

// IsValid returns true if the convention is recognized
func (c Convention) IsValid() bool {
	switch c {
	case ConventionClaude, ConventionCursor:
		return true
	default:
		return false
	}
}

// layout describes a convention's directory scheme and the rendered
// document a unit must have to be installable
type layout struct {
	toolDir  string
	subDir   string
	required string
}

var layouts = map[Convention]layout{
	ConventionClaude: {toolDir: ".claude", subDir: "skills", required: render.DefinitionName},
	ConventionCursor: {toolDir: ".cursor", subDir: "rules", required: render.RuleName},
}

// RequiredDocument returns the rendered document a unit needs before it
// can be installed under this convention
func (c Convention) RequiredDocument() string {
	return layouts[c].required
}

// ResolveDestination maps a user-supplied destination to the concrete
// install directory for a convention. Three forms are accepted: the
// exact target directory (ending in .claude/skills or .cursor/rules),
// the tool root (ending in .claude or .cursor), or a project root
// (anything else, which gets the full two-level path appended).
func ResolveDestination(dest string, c Convention) string {
	l := layouts[c]
	clean := filepath.Clean(dest)

	base := filepath.Base(clean)
	switch {
	case base == l.subDir && filepath.Base(filepath.Dir(clean)) == l.toolDir:
		return clean
	case base == l.toolDir:
		return filepath.Join(clean, l.subDir)
	default:
		return filepath.Join(clean, l.toolDir, l.subDir)
	}
}

// Options configures an install run
type Options struct {
	Source        string     // Subtree to install from
	Dest          string     // Raw destination (project root, tool root, or exact dir)
	Convention    Convention // Target tool convention
	Symlink       bool       // Symlink instead of copy
	WithReference bool       // Also install a group REFERENCE.md when present
}

// Result reports what an install run did
type Result struct {
	Installed  []string // Paths written under the destination
	Skipped    []string // Per-unit warnings for incomplete units
	References []string // Shared reference documents installed
}

// Run installs every unit found under the source subtree. Incomplete
// units (missing the convention's rendered document) are skipped with a
// warning; a missing source or an unwritable destination is fatal.
func Run(opts Options) (*Result, error) {
	if !opts.Convention.IsValid() {
		return nil, fmt.Errorf("unknown convention: %s", opts.Convention)
	}
	if _, err := os.Stat(opts.Source); err != nil {
		return nil, fmt.Errorf("source path does not exist: %s", opts.Source)
	}

	units, err := locate.Discover(opts.Source)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("no skills found under %s", opts.Source)
	}

	destDir := ResolveDestination(opts.Dest, opts.Convention)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	result := &Result{}
	installedRefs := make(map[string]bool)

	for _, descPath := range units {
		unitDir := filepath.Dir(descPath)
		l := layouts[opts.Convention]

		src := filepath.Join(unitDir, l.required)
		if _, err := os.Stat(src); err != nil {
			result.Skipped = append(result.Skipped,
				fmt.Sprintf("%s: missing %s (run 'scribe generate' first)", unitDir, l.required))
			continue
		}

		name := unitName(descPath, unitDir)

		var target string
		switch opts.Convention {
		case ConventionClaude:
			skillDir := filepath.Join(destDir, name)
			if err := os.MkdirAll(skillDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create %s: %w", skillDir, err)
			}
			target = filepath.Join(skillDir, render.DefinitionName)
		case ConventionCursor:
			target = filepath.Join(destDir, name+".md")
		}

		if err := place(src, target, opts.Symlink); err != nil {
			return nil, err
		}
		result.Installed = append(result.Installed, target)

		if opts.WithReference {
			ref := filepath.Join(filepath.Dir(unitDir), ReferenceName)
			if _, err := os.Stat(ref); err != nil {
				continue
			}
			refTarget := filepath.Join(destDir, ReferenceName)
			if installedRefs[refTarget] {
				continue
			}
			if err := place(ref, refTarget, opts.Symlink); err != nil {
				return nil, err
			}
			installedRefs[refTarget] = true
			result.References = append(result.References, refTarget)
		}
	}

	return result, nil
}

// unitName derives the install name for a unit: the descriptor id's
// short name when the descriptor parses, else the directory basename
func unitName(descPath, unitDir string) string {
	d, err := descriptor.Load(descPath)
	if err != nil || d.ShortName() == "" {
		return filepath.Base(unitDir)
	}
	return d.ShortName()
}

// place copies or symlinks src to dst, replacing any previous file
func place(src, dst string, symlink bool) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("failed to replace %s: %w", dst, err)
	}

	if symlink {
		abs, err := filepath.Abs(src)
		if err != nil {
			return err
		}
		return os.Symlink(abs, dst)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", src, err)
	}
	return os.WriteFile(dst, data, 0644)
}
