package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/ladder/pkg/ladder/prompt"
)

// Calibration is the on-disk calibration configuration.
type Calibration struct {
	Examples []CalibrationExample `yaml:"examples"`
}

// CalibrationExample is one sentence/level record.
type CalibrationExample struct {
	Sentence string `yaml:"sentence"`
	Level    int    `yaml:"level"`
}

// LoadCalibration loads calibration examples from a YAML file. Records
// missing a sentence or with a level outside 1..5 are skipped, not fatal.
func LoadCalibration(path string) ([]prompt.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cal Calibration
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return nil, err
	}

	examples := make([]prompt.Example, 0, len(cal.Examples))
	for _, rec := range cal.Examples {
		if rec.Sentence == "" || rec.Level < prompt.MinLevel || rec.Level > prompt.MaxLevel {
			continue
		}
		examples = append(examples, prompt.Example{Sentence: rec.Sentence, Level: rec.Level})
	}
	return examples, nil
}

// Examples resolves the calibration set for a run: the file at path if it
// loads, otherwise the built-in defaults. An empty path always means the
// defaults. Load failures degrade rather than abort.
func Examples(path string) []prompt.Example {
	if path == "" {
		return prompt.DefaultExamples()
	}
	examples, err := LoadCalibration(path)
	if err != nil {
		return prompt.DefaultExamples()
	}
	return examples
}
