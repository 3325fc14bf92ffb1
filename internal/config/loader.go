package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Stage names accepted in pipeline files, in canonical execution order.
var knownStages = map[string]bool{
	"preprocess":   true,
	"clean":        true,
	"run-analysis": true,
	"summarize":    true,
	"visualize":    true,
}

// File is a pipeline description loaded from YAML. It replaces the
// external workflow tool for simple linear runs:
//
//	defaults:
//	  delimiter: ","
//	stages:
//	  - name: preprocess
//	    input: data/raw.csv
//	    output: data/preprocessed.csv
//	  - name: clean
//	    input: data/preprocessed.csv
//	    output: data/cleaned.csv
type File struct {
	// Defaults apply to every stage unless overridden per stage.
	Defaults Defaults `yaml:"defaults"`

	// Stages lists the stages to execute, in order.
	Stages []StageConfig `yaml:"stages"`
}

// Defaults holds settings applied to every stage of a pipeline file.
type Defaults struct {
	// Delimiter is the field delimiter for preprocess stages.
	Delimiter string `yaml:"delimiter,omitempty"`
}

// StageConfig describes one stage of a pipeline file.
type StageConfig struct {
	// Name is the stage to run; must be one of the five stage names.
	Name string `yaml:"name"`

	// Input is the file the stage reads.
	Input string `yaml:"input"`

	// Output is the file the stage writes.
	Output string `yaml:"output"`

	// Delimiter overrides the default delimiter for this stage.
	Delimiter string `yaml:"delimiter,omitempty"`
}

// Validate checks the pipeline description.
func (f *File) Validate() error {
	if len(f.Stages) == 0 {
		return ErrNoStages
	}
	for i, s := range f.Stages {
		if !knownStages[s.Name] {
			return fmt.Errorf("stage %d: %w: %q", i+1, ErrUnknownStage, s.Name)
		}
		if s.Input == "" {
			return fmt.Errorf("stage %d (%s): %w", i+1, s.Name, ErrNoInput)
		}
		if s.Output == "" {
			return fmt.Errorf("stage %d (%s): %w", i+1, s.Name, ErrNoOutput)
		}
	}
	return nil
}

// StageDelimiter resolves the delimiter for one stage: the stage's own
// setting, then the file default, then the global default.
func (f *File) StageDelimiter(s StageConfig) (rune, error) {
	value := s.Delimiter
	if value == "" {
		value = f.Defaults.Delimiter
	}
	if value == "" {
		return DefaultDelimiter, nil
	}
	return ParseDelimiter(value)
}

// LoadFile loads a pipeline description from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline file: %w", err)
	}

	return &f, nil
}

// FindConfigFile searches for the pipeline configuration file:
// 1. If configPath is specified, use it directly
// 2. Look for .episurv.yaml in the current directory
// 3. Look for .episurv.yaml in the user's home directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
