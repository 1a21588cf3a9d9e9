// Package config handles loading converter configuration from files.
//
// Configuration lives in a YAML or JSON file named pythva.yaml (or .yml,
// .json, with optional leading dot). The file is searched for in the
// working directory first, then in the user's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the conversion options. Zero values are not meaningful;
// always start from Default().
type Config struct {
	// Output settings
	OutputStyle           string `yaml:"output_style" json:"output_style"` // java, compact, verbose
	AddPackageDeclaration bool   `yaml:"add_package_declaration" json:"add_package_declaration"`
	PackageName           string `yaml:"package_name" json:"package_name"`

	// Type names used in emitted declarations
	DefaultType string `yaml:"default_type" json:"default_type"`
	StringType  string `yaml:"string_type" json:"string_type"`
	IntType     string `yaml:"int_type" json:"int_type"`
	FloatType   string `yaml:"float_type" json:"float_type"`
	BoolType    string `yaml:"bool_type" json:"bool_type"`
	ListType    string `yaml:"list_type" json:"list_type"`
	DictType    string `yaml:"dict_type" json:"dict_type"`

	// Code style
	IndentSize         int  `yaml:"indent_size" json:"indent_size"`
	UseTabs            bool `yaml:"use_tabs" json:"use_tabs"`
	AddAccessModifiers bool `yaml:"add_access_modifiers" json:"add_access_modifiers"`
	AddFinalModifiers  bool `yaml:"add_final_modifiers" json:"add_final_modifiers"`

	// Function spellings
	PrintFunction string `yaml:"print_function" json:"print_function"`
	LenFunction   string `yaml:"len_function" json:"len_function"`
	RangeFunction string `yaml:"range_function" json:"range_function"`

	// Feature toggles
	EnableTypeInference       bool `yaml:"enable_type_inference" json:"enable_type_inference"`
	EnableStringInterpolation bool `yaml:"enable_string_interpolation" json:"enable_string_interpolation"`
	EnableCollectionLiterals  bool `yaml:"enable_collection_literals" json:"enable_collection_literals"`
	PreserveComments          bool `yaml:"preserve_comments" json:"preserve_comments"`

	// Cache
	CacheEnabled bool `yaml:"cache_enabled" json:"cache_enabled"`
	MaxCacheSize int  `yaml:"max_cache_size" json:"max_cache_size"`

	// Debug
	DebugMode     bool `yaml:"debug_mode" json:"debug_mode"`
	VerboseOutput bool `yaml:"verbose_output" json:"verbose_output"`

	Plugins PluginConfig `yaml:"plugins" json:"plugins"`
}

// PluginConfig selects and parameterizes plugins.
type PluginConfig struct {
	Enabled  []string       `yaml:"enabled" json:"enabled"`
	Settings map[string]any `yaml:"settings" json:"settings"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		OutputStyle:           "java",
		AddPackageDeclaration: true,
		PackageName:           "pythva.generated",

		DefaultType: "Object",
		StringType:  "String",
		IntType:     "int",
		FloatType:   "double",
		BoolType:    "boolean",
		ListType:    "List",
		DictType:    "Map",

		IndentSize:         4,
		AddAccessModifiers: true,

		PrintFunction: "System.out.println",
		LenFunction:   ".size()",
		RangeFunction: "IntStream.range",

		EnableTypeInference:       true,
		EnableStringInterpolation: true,
		EnableCollectionLiterals:  true,
		PreserveComments:          true,

		CacheEnabled: true,
		MaxCacheSize: 1000,
	}
}

// FileNames are the names searched for config files, in order of preference.
var FileNames = []string{
	"pythva.yaml",
	"pythva.yml",
	"pythva.json",
	".pythva.yaml",
	".pythva.yml",
	".pythva.json",
}

// Find searches startDir and then the home directory for a config file.
// Returns "" when none exists.
func Find(startDir string) string {
	for _, name := range FileNames {
		path := filepath.Join(startDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range FileNames {
			if !strings.HasPrefix(name, ".") {
				continue
			}
			path := filepath.Join(home, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// Load reads a config file on top of the defaults. The extension picks the
// decoder: .json uses encoding/json, everything else YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Save writes the config as YAML (or JSON for .json paths).
func (c *Config) Save(path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Indent returns one level of indentation as text.
func (c *Config) Indent() string {
	if c.UseTabs {
		return "\t"
	}
	size := c.IndentSize
	if size <= 0 {
		size = 4
	}
	return strings.Repeat(" ", size)
}
