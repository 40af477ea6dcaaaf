package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseFile         = "base.yaml"
)

// ErrUnknownProfile is returned when no {profile}.yaml exists in the config
// directory.
var ErrUnknownProfile = errors.New("unknown config profile")

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the Config for profile. Later layers win:
//
//	defaults → base.yaml → {profile}.yaml → APP_* environment
//
// Env var names are matched against keys already known from the earlier
// layers, so APP_STORE_CIRCUIT_BREAKER_MAX_FAILURES becomes
// store.circuit_breaker.max_failures rather than store.circuit.breaker.max.failures.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	profilePath := filepath.Join(o.configDir, profile+".yaml")
	if _, err := os.Stat(profilePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownProfile, profile,
			strings.Join(availableProfiles(o.configDir), ", "))
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, path := range []string{filepath.Join(o.configDir, baseFile), profilePath} {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// availableProfiles lists the profile names that have a YAML file in dir.
func availableProfiles(dir string) []string {
	matches, _ := filepath.Glob(filepath.Join(dir, "*.yaml"))
	profiles := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), ".yaml")
		if name+".yaml" != baseFile {
			profiles = append(profiles, name)
		}
	}
	slices.Sort(profiles)
	return profiles
}

// envKeyMapper turns APP_SERVER_READ_TIMEOUT into server.read_timeout using
// the dotted keys loaded so far. Unknown names fall back to replacing every
// underscore with a dot.
func envKeyMapper(known []string) func(key, value string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if dotted, ok := byEnvName[name]; ok {
			return dotted, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}
