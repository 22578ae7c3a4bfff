package descriptor

import (
	"regexp"
	"strings"
)

// semverPrefix matches three dot-separated numbers at the start of the
// version string. Pre-release and build suffixes after the triplet are fine.
var semverPrefix = regexp.MustCompile(`^\d+\.\d+\.\d+`)

// ValidationResult holds the outcome of validating one descriptor
type ValidationResult struct {
	ID     string
	Errors []string
}

// OK reports whether the descriptor passed all checks
func (r *ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks required-field presence and the version shape.
// Every missing required field is named in a single diagnostic, in the
// order id, title, version, description. The version shape is only
// checked when a version is present.
func (d *Descriptor) Validate() *ValidationResult {
	result := &ValidationResult{ID: d.ID}

	required := []struct {
		name  string
		value string
	}{
		{"id", d.ID},
		{"title", d.Title},
		{"version", d.Version},
		{"description", d.Description},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors, "missing required fields: "+strings.Join(missing, ", "))
	}

	if d.Version != "" && !semverPrefix.MatchString(d.Version) {
		result.Errors = append(result.Errors, "version must be semver x.y.z")
	}

	return result
}
