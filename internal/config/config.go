package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/gitignore-sync/internal/model"
)

// Default locations, all relative to the workspace root. They mirror the
// layout the delegated Python module historically assumed.
const (
	// DefaultTemplate is the canonical template path.
	DefaultTemplate = "resources/gitignore-template.txt"

	// DefaultModuleDir is the delegated Python module directory name.
	DefaultModuleDir = "x_make_gitignore_sync_x"
)

// candidateNames are the recognized config file names, checked in order.
var candidateNames = []string{
	"gitignore-sync.jsonc",
	"gitignore-sync.json",
	"gitignore-sync.yaml",
	"gitignore-sync.yml",
}

// Config holds the workspace-level settings. All fields are optional;
// unknown keys in the file are silently ignored.
type Config struct {
	// Template overrides the canonical template path. Relative paths are
	// resolved against the workspace root.
	Template string `json:"template,omitempty" yaml:"template,omitempty"`

	// Exclude lists first-level directory names skipped during
	// repository discovery (in addition to hidden directories, which are
	// always skipped).
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// Interpreter overrides the launcher's virtual-environment
	// interpreter path, relative to the workspace root.
	Interpreter string `json:"interpreter,omitempty" yaml:"interpreter,omitempty"`

	// ModuleDir overrides the delegated module directory name the
	// launcher validates and invokes.
	ModuleDir string `json:"moduleDir,omitempty" yaml:"moduleDir,omitempty"`
}

// Load reads the workspace configuration from root, if present.
//
// The first existing candidate file is parsed according to its
// extension. A missing file yields a zero-value Config; a file that
// exists but cannot be parsed is a CLIError with ExitConfigError.
func Load(root string) (*Config, error) {
	for _, name := range candidateNames {
		path := filepath.Join(root, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to read config file %s", path), err)
		}
		return parse(path, data)
	}

	// No config file — all defaults.
	return &Config{}, nil
}

// parse decodes the config bytes based on the file extension.
func parse(path string, data []byte) (*Config, error) {
	cfg := &Config{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("invalid YAML in config file %s", path), err)
		}
	default:
		// JSONC is a superset of JSON, so .json files go through the
		// same comment-stripping path harmlessly.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("invalid JSON in config file %s", path), err)
		}
	}

	return cfg, nil
}

// TemplatePath resolves the canonical template path against the
// workspace root, applying the default when unset. An absolute
// configured path is used as-is.
func (c *Config) TemplatePath(root string) string {
	return c.resolve(root, c.Template, DefaultTemplate)
}

// InterpreterPath resolves the launcher's expected virtual-environment
// interpreter path against the workspace root.
func (c *Config) InterpreterPath(root string) string {
	return c.resolve(root, c.Interpreter, defaultInterpreter())
}

// ModuleDirPath resolves the delegated module directory against the
// workspace root.
func (c *Config) ModuleDirPath(root string) string {
	return c.resolve(root, c.ModuleDir, DefaultModuleDir)
}

// ModuleName returns the delegated module's import name, used to build
// the -m invocation target.
func (c *Config) ModuleName() string {
	if c.ModuleDir != "" {
		return c.ModuleDir
	}
	return DefaultModuleDir
}

// resolve applies the default for an unset value and anchors relative
// paths at the workspace root.
func (c *Config) resolve(root, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(root, value)
}

// defaultInterpreter returns the conventional virtual-environment
// interpreter location for the current platform.
func defaultInterpreter() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(".venv", "Scripts", "python.exe")
	}
	return filepath.Join(".venv", "bin", "python")
}
