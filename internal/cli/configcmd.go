package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/thermo/internal/config"
	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd groups the config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the thermo config",
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every config key",
	Long: `List every config key in the dotted form used by --set and
'thermo config set'. Each key can also be set from the environment as
THERMO_<KEY>, with dots turned into underscores (THERMO_GAUGE_WIDTH).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ConfigKeys(cmd.OutOrStdout())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved config",
	Long:  `Print the config after defaults, the config file and THERMO_* overrides are merged.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ConfigShow(cmd.OutOrStdout())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one key in the config file",
	Long: `Set one key in the config file found for this directory, keeping its
comments and layout. The change is rejected if the result would not validate.

Examples:
  thermo config set gauge.width 240
  thermo config set gauge.show_hatches true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ConfigSet(cmd.OutOrStdout(), args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// ConfigKeys writes the known config keys, one per line.
func ConfigKeys(out io.Writer) error {
	_, err := fmt.Fprintln(out, strings.Join(config.Keys(), "\n"))
	return err
}

// ConfigShow writes the resolved config as YAML.
func ConfigShow(out io.Writer) error {
	cfg, _, err := loadConfig(nil)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	_, err = out.Write(data)
	return err
}

// ConfigSet sets key to value in the config file that Find locates.
func ConfigSet(out io.Writer, key, value string) error {
	path, err := config.Find(config.ExpandTilde(configFlag))
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"No config file to edit",
			"Run 'thermo init' to create one, or pass --config")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return err
	}
	log.Debug("set %s=%s in %s", key, value, path)
	_, err = fmt.Fprintf(out, "Set %s = %s in %s\n", key, value, path)
	return err
}
