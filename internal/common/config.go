package common

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config drives a single generation run. Fields missing from the YAML file
// keep their defaults.
type Config struct {
	Input      string            `yaml:"input"`      // preprocessed translation unit, e.g. "lvgl_full.c"
	ClangArgs  []string          `yaml:"clangArgs"`  // extra arguments passed to the parser
	Prefix     string            `yaml:"prefix"`     // library function-name prefix
	BaseObject string            `yaml:"baseObject"` // widget name of the generic base object, never generated
	TypeMap    map[string]string `yaml:"typeMap"`    // extra primitive type mappings
	Output     string            `yaml:"output"`     // directory for generated widget modules
}

func LoadConfig(filepath string) (*Config, error) {
	config := &Config{
		Input:      "lvgl_full.c",
		Prefix:     "lv_",
		BaseObject: "obj",
		Output:     "./generated",
	}

	bytes, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(bytes, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
