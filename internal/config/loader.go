package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".thermo.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/thermo"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. THERMO_GAUGE_WIDTH.
	EnvPrefix = "THERMO"
)

// Load reads config from path, or starts from the defaults when path is
// empty, and applies key=value overrides on top, e.g. "gauge.width=200".
func Load(path string, overrides ...string) (*Config, error) {
	return load(ExpandTilde(path), overrides)
}

// Resolve finds the config the way Find does and loads it with Load. It
// returns the config and the path it came from.
func Resolve(explicit string, overrides []string) (*Config, string, error) {
	path, err := Find(ExpandTilde(explicit))
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path, overrides...)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func load(path string, overrides []string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Run 'thermo init' to create a config file, or specify one with --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	if err := applyOverrides(v, overrides); err != nil {
		return nil, err
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .thermo.yaml in current directory
// 3. .thermo.yaml in parent directories (stops at git root or home)
// 4. ~/.config/thermo/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Walk up to parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		if isGitRoot(dir) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	// 4. Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// Keys lists every settable config key in dotted form.
func Keys() []string {
	keys := newViper().AllKeys()
	slices.Sort(keys)
	return keys
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so env overrides and --set resolve even
// when the file leaves a section out.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	g := d.Gauge

	v.SetDefault("version", d.Version)

	v.SetDefault("gauge.line_color", g.LineColor)
	v.SetDefault("gauge.line_width", g.LineWidth)
	v.SetDefault("gauge.line_type", g.LineType)
	v.SetDefault("gauge.background", g.Background)
	v.SetDefault("gauge.fill_color", g.FillColor)
	v.SetDefault("gauge.fill_image", g.FillImage)
	v.SetDefault("gauge.show_hatches", g.ShowHatches)
	v.SetDefault("gauge.hatch_length", g.HatchLength)
	v.SetDefault("gauge.hatch_value", g.HatchValue)
	v.SetDefault("gauge.hatch_type", string(g.HatchType))
	v.SetDefault("gauge.hatch_total_value", g.HatchTotalValue)
	v.SetDefault("gauge.show_hatch_labels", g.ShowHatchLabels)
	v.SetDefault("gauge.hatch_label_font", g.HatchLabelFont)
	v.SetDefault("gauge.hatch_label_size", g.HatchLabelSize)
	v.SetDefault("gauge.show_value", g.ShowValue)
	v.SetDefault("gauge.show_value_type", string(g.ShowValueType))
	v.SetDefault("gauge.show_value_color", g.ShowValueColor)
	v.SetDefault("gauge.width", g.Width)
	v.SetDefault("gauge.height", g.Height)

	v.SetDefault("render.scale_x", d.Render.ScaleX)
	v.SetDefault("render.scale_y", d.Render.ScaleY)
	v.SetDefault("render.inner_bound_adjustment", d.Render.InnerBoundAdjustment)

	v.SetDefault("animation.fps", d.Animation.FPS)
	v.SetDefault("animation.frequency", d.Animation.Frequency)
	v.SetDefault("animation.damping", d.Animation.Damping)

	v.SetDefault("output.color", d.Output.Color)
}

// applyOverrides sets each key=value pair on v. Keys must already be known.
func applyOverrides(v *viper.Viper, overrides []string) error {
	known := v.AllKeys()
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if !ok || key == "" {
			return errors.New(errors.ErrInput,
				fmt.Sprintf("Can't parse override %q", kv),
				"Use key=value, e.g. --set gauge.width=200")
		}
		if !slices.Contains(known, key) {
			return errors.New(errors.ErrInput,
				fmt.Sprintf("Unknown config key %q", key),
				"Run 'thermo config keys' to list them")
		}
		v.Set(key, strings.TrimSpace(value))
	}
	return nil
}

// parseConfig converts viper config to our Config struct.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		where := "your overrides"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+where)
	}

	cfg.Gauge.HatchType = cfg.Gauge.HatchType.Normalize()
	cfg.Gauge.ShowValueType = cfg.Gauge.ShowValueType.Normalize()
	return cfg, nil
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
