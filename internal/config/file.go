package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// loadFile reads a YAML config file whose keys are lower-cased variable
// names, e.g. database_uri or notify_workers.
func loadFile(path string) (envLookup, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config file %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		name := strings.ToLower(key)
		if !k.Exists(name) {
			return "", false
		}
		if _, isList := k.Get(name).([]any); isList {
			return strings.Join(k.Strings(name), ","), true
		}
		return k.String(name), true
	}, nil
}

// layered consults primary first and falls back to secondary.
func layered(primary, secondary envLookup) envLookup {
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok && v != "" {
			return v, true
		}
		return secondary(key)
	}
}
