// Package descriptor defines the skill descriptor schema.
// A descriptor is a skill.json file describing one skill unit: its
// identity, version, and the trigger/guarantee metadata rendered into
// the generated documents.
package descriptor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DescriptorName is the filename of a skill descriptor within its unit directory
const DescriptorName = "skill.json"

// Descriptor represents one skill.json file
type Descriptor struct {
	// Required fields
	ID          string `json:"id"`          // Dotted-namespace identifier, e.g. "go.errors"
	Title       string `json:"title"`       // Human-readable name
	Version     string `json:"version"`     // Semver, checked as an x.y.z prefix
	Description string `json:"description"` // One-line summary

	// Optional fields
	Triggers   []string `json:"triggers,omitempty"`   // Phrases describing when the skill applies
	Inputs     Inputs   `json:"inputs,omitempty"`     // Named inputs, insertion order preserved
	Guarantees []string `json:"guarantees,omitempty"` // Behavioral commitments
	NonGoals   []string `json:"non_goals,omitempty"`  // Explicit exclusions
	Notes      string   `json:"notes,omitempty"`      // Free-text notes
}

// Input is one named input with its description
type Input struct {
	Key         string
	Description string
}

// Inputs preserves the JSON object's insertion order, which a Go map
// would lose. Rendering depends on the authored order.
type Inputs []Input

// UnmarshalJSON decodes a JSON object into an ordered list of inputs
func (in *Inputs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("inputs must be an object")
	}

	var result Inputs
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("inputs key must be a string")
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("inputs[%s] must be a string: %w", key, err)
		}

		result = append(result, Input{Key: key, Description: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*in = result
	return nil
}

// MarshalJSON encodes the inputs back into a JSON object in order
func (in Inputs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, input := range in {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(input.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(input.Description)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ShortName returns the last dot-separated segment of the id,
// used for generated frontmatter and install directory names
func (d *Descriptor) ShortName() string {
	if d.ID == "" {
		return ""
	}
	parts := strings.Split(d.ID, ".")
	return parts[len(parts)-1]
}

// Load reads and parses a descriptor file
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	return &d, nil
}
