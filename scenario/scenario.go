// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqform/indicator"
)

// scenarioValidate is the shared validator instance for scenario documents.
// Initialized in init() with the struct-level window rules.
var scenarioValidate *validator.Validate

func init() {
	scenarioValidate = validator.New()
	scenarioValidate.RegisterStructValidation(validateWindow, Scenario{})
}

// Scenario describes one encoding run: a named target window and an
// optional start state, as read from a YAML document.
//
// Field rules (validator tags plus the struct-level window checks):
//   - Name — required, used in driver output and error context.
//   - Length — window size; defaults to len(Target) via Normalize, must
//     stay within the encoder's window bound.
//   - Target — required, at least one entry, all entries non-negative.
//   - Start — optional prior state, entries non-negative, at most Length
//     entries (shorter sequences are left-padded downstream).
type Scenario struct {
	Name   string `yaml:"name" validate:"required"`
	Length int    `yaml:"length" validate:"gte=1"`
	Target []int  `yaml:"target" validate:"required,min=1,dive,gte=0"`
	Start  []int  `yaml:"start" validate:"omitempty,dive,gte=0"`
}

// validateWindow holds the cross-field rules no single tag can express:
// the window must fit the encoder bound and cover both sequences.
func validateWindow(sl validator.StructLevel) {
	s := sl.Current().Interface().(Scenario)
	if int64(s.Length) > indicator.MaxWindow {
		sl.ReportError(s.Length, "length", "Length", "maxwindow", "")
	}
	if len(s.Target) > s.Length {
		sl.ReportError(s.Target, "target", "Target", "fitswindow", "")
	}
	if len(s.Start) > s.Length {
		sl.ReportError(s.Start, "start", "Start", "fitswindow", "")
	}
}

// Normalize fills derived defaults: a zero Length becomes len(Target).
// Call it before Validate; Parse and Load already do.
func (s *Scenario) Normalize() {
	if s.Length == 0 {
		s.Length = len(s.Target)
	}
}

// Validate checks the scenario against its field tags and window rules,
// returning the validator's error with per-field detail.
func (s *Scenario) Validate() error {
	return scenarioValidate.Struct(s)
}

// Parse unmarshals one YAML scenario document, normalizes defaults, and
// validates the result.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: parse: %w", err)
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return s, nil
}

// Load reads and parses the YAML scenario file at path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}
