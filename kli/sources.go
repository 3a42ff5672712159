package kli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Defaults maps long option ids to raw fallback values. Nested keys from a
// defaults file are flattened with "." (e.g. {"db": {"host": x}} => "db.host").
type Defaults map[string]string

// EnvLookup reports the value of an environment variable
type EnvLookup func(name string) (string, bool)

// LoadDefaults reads a defaults file. The format is chosen by extension:
// .json, .toml, .yaml or .yml.
func LoadDefaults(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Cause: err}
	}

	var tree map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &tree)
	case ".toml":
		err = toml.Unmarshal(data, &tree)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tree)
	default:
		err = fmt.Errorf("unsupported format %q (want .json, .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Cause: err}
	}

	defaults := make(Defaults, len(tree))
	flatten("", tree, defaults)
	return defaults, nil
}

// flatten converts nested maps to dotted keys with stringified values
func flatten(prefix string, src map[string]any, dst Defaults) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, dst)
		case nil:
			// absent
		default:
			dst[key] = stringify(val)
		}
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	case float64:
		// JSON numbers decode as float64; keep integers integral
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprint(val)
	default:
		return fmt.Sprint(val)
	}
}

// Keys returns the defaults' keys in sorted order
func (d Defaults) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// applyFallbacks binds options the command line left untouched, first from
// their environment variables, then from the defaults.
func (s *session) applyFallbacks(options []Option, lookup EnvLookup, defaults Defaults) {
	for _, opt := range options {
		if s.aborted() {
			return
		}
		if opt.Source() != SourceNone || len(opt.EnvVars()) == 0 || lookup == nil {
			continue
		}
		for _, name := range opt.EnvVars() {
			if raw, ok := lookup(name); ok && strings.TrimSpace(raw) != "" {
				s.apply(opt, raw, SourceEnv)
				break
			}
		}
	}

	for _, opt := range options {
		if s.aborted() {
			return
		}
		if opt.Source() != SourceNone || opt.LongID() == "" {
			continue
		}
		if raw, ok := defaults[opt.LongID()]; ok && strings.TrimSpace(raw) != "" {
			s.apply(opt, raw, SourceFile)
		}
	}
}
