package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

/*
Config System Design:
This configuration system implements a hierarchical config with the following precedence
(highest to lowest priority):

1. Runtime overrides (CLI flags)
2. Environment variables (TIRC_<SECTION>_<KEY>, e.g. TIRC_LOG_LOGLEVEL)
3. Local project config (.tirc/*.tirc.{yaml,json})
4. Global user config ($XDG_CONFIG_HOME/tirc/*.tirc.{yaml,json})
5. Default values (embedded defaults.tirc.yaml)

Multiple files in a directory are merged alphabetically. Lists combine, maps
merge deeply and scalars override. Key bindings and session channels are the
exception: a file that sets them replaces the list, so defaults can be unbound
and the first channel (the active one) can be chosen.
*/

//go:embed defaults.tirc.yaml
var defaultsYAML []byte

const (
	appName    = "tirc"
	envPrefix  = "TIRC"
	fileSuffix = ".tirc"
	sourceDflt = "default"
)

// Paths lists the directories searched for config files.
type Paths struct {
	GlobalDir string
	LocalDir  string
}

// DefaultPaths returns $XDG_CONFIG_HOME/tirc and ./.tirc.
func DefaultPaths() (Paths, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, errors.Wrap(err, "failed to resolve home directory")
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return Paths{
		GlobalDir: filepath.Join(xdgConfig, appName),
		LocalDir:  "." + appName,
	}, nil
}

// Config holds the merged settings and the files each key came from
type Config struct {
	v       *viper.Viper
	sources map[string][]string
	unknown []string
}

// New loads the configuration from the default locations, applies overrides
// and validates the result. The returned Config keeps sources and unknown
// keys for reporting.
func New(overrides *RuntimeOverrides) (*Config, *ConfigSchema, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, nil, err
	}
	c, err := Load(paths)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := c.Schema(overrides)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// Load reads defaults and every config file under paths.
func Load(paths Paths) (*Config, error) {
	c := &Config{
		v:       viper.New(),
		sources: make(map[string][]string),
	}

	merged, err := readFile(bytes.NewReader(defaultsYAML), "yaml")
	if err != nil {
		return nil, errors.Wrap(err, "could not read defaults")
	}
	c.trackSources(merged, "", sourceDflt)

	known := GetKnownKeys()
	for _, dir := range []string{paths.GlobalDir, paths.LocalDir} {
		if dir == "" {
			continue
		}
		files, err := findConfigFiles(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "error listing config directory %s", dir)
		}
		for _, f := range files {
			settings, err := readConfigFile(f)
			if err != nil {
				return nil, err
			}
			for _, key := range flattenKeys(settings, "") {
				if !IsKnownKey(known, key) {
					c.unknown = append(c.unknown, fmt.Sprintf("%s (%s)", key, f))
				}
			}
			c.trackSources(settings, "", f)
			merged = mergeMapRecursive(merged, settings, "")
		}
	}

	if err := c.v.MergeConfigMap(merged); err != nil {
		return nil, errors.Wrap(err, "error merging config")
	}

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()
	for _, key := range c.v.AllKeys() {
		env := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if _, ok := os.LookupEnv(env); ok {
			c.sources[key] = append(c.sources[key], env+" environment variable")
		}
	}

	return c, nil
}

// findConfigFiles returns all *.tirc.{yaml,yml,json} files in a directory,
// sorted by name
func findConfigFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for _, ext := range []string{".yaml", ".yml", ".json"} {
			if strings.HasSuffix(name, fileSuffix+ext) {
				files = append(files, filepath.Join(dir, name))
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func readConfigFile(path string) (map[string]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file %s", path)
	}
	defer f.Close()

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "yml" {
		ext = "yaml"
	}
	settings, err := readFile(f, ext)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file %s", path)
	}
	return settings, nil
}

func readFile(r io.Reader, configType string) (map[string]interface{}, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return nil, err
	}
	return v.AllSettings(), nil
}

// replaceLists names the sections whose lists override instead of combining.
var replaceLists = map[string]bool{
	"keymap":  true,
	"session": true,
}

func mergeMapRecursive(existing, incoming map[string]interface{}, prefix string) map[string]interface{} {
	result := make(map[string]interface{}, len(existing))
	for k, v := range existing {
		result[k] = v
	}

	for k, v := range incoming {
		current, ok := existing[k]
		if !ok || current == nil {
			result[k] = v
			continue
		}

		switch existingVal := current.(type) {
		case map[string]interface{}:
			if newVal, ok := v.(map[string]interface{}); ok {
				result[k] = mergeMapRecursive(existingVal, newVal, k)
			} else {
				result[k] = v
			}
		case []interface{}:
			newVal, ok := v.([]interface{})
			if !ok || replaceLists[prefix] {
				result[k] = v
				continue
			}
			// Combine, keeping the first occurrence of each value.
			seen := make(map[interface{}]bool)
			combined := make([]interface{}, 0, len(existingVal)+len(newVal))
			for _, item := range append(append([]interface{}{}, existingVal...), newVal...) {
				if !seen[item] {
					seen[item] = true
					combined = append(combined, item)
				}
			}
			result[k] = combined
		default:
			result[k] = v
		}
	}
	return result
}

func flattenKeys(settings map[string]interface{}, prefix string) []string {
	var keys []string
	for k, v := range settings {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			keys = append(keys, flattenKeys(nested, key)...)
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) trackSources(settings map[string]interface{}, prefix, source string) {
	for _, key := range flattenKeys(settings, prefix) {
		c.sources[key] = append(c.sources[key], source)
	}
}

// Source returns where the effective value of key came from.
func (c *Config) Source(key string) string {
	sources := c.sources[strings.ToLower(key)]
	if len(sources) == 0 {
		return sourceDflt
	}
	return sources[len(sources)-1]
}

// UnknownKeys lists keys found in config files that the schema does not
// define, annotated with their file.
func (c *Config) UnknownKeys() []string {
	return append([]string(nil), c.unknown...)
}

// AllSettings returns the merged settings, environment included.
func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}

// Schema unmarshals the settings, applies overrides and validates.
func (c *Config) Schema(overrides *RuntimeOverrides) (*ConfigSchema, error) {

	var cfg ConfigSchema
	if err := c.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}
	overrides.apply(&cfg)

	if cfg.DBPath == "" {
		path, err := defaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration against the schema
func Validate(cfg *ConfigSchema) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}

func defaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve home directory")
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName, appName+".db"), nil
}
