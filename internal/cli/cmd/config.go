package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/shower/internal/cli/styles"
	"github.com/bnema/shower/internal/infrastructure/config"
)

var (
	configYes         bool
	configSchemaPrint bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration, schema and log paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		r := renderer()
		configFile, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		schemaFile, err := config.GetSchemaFile()
		if err != nil {
			return err
		}
		logDir, err := config.GetLogDir()
		if err != nil {
			return err
		}
		dirs, err := config.GetXDGDirs()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, r.RenderPath("config", configFile))
		fmt.Fprintln(out, r.RenderPath("schema", schemaFile))
		fmt.Fprintln(out, r.RenderPath("logs", logDir))
		fmt.Fprintln(out, r.RenderPath("data", dirs.DataHome))
		fmt.Fprintln(out, r.RenderPath("cache", dirs.CacheHome))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, environment overrides and normalization.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Init(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return config.EncodeTOML(cmd.OutOrStdout(), config.Get())
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configSchemaPrint {
			data, err := config.MarshalSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}
		if err := config.EnsureDirectories(); err != nil {
			return err
		}
		path, err := config.GetSchemaFile()
		if err != nil {
			return err
		}
		if err := config.WriteSchemaFile(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer().RenderSuccess("schema written to "+path))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the config file with the defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

func init() {
	configSchemaCmd.Flags().BoolVar(&configSchemaPrint, "stdout", false, "print the schema instead of writing it")
	configResetCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")

	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configResetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	r := renderer()
	out := cmd.OutOrStdout()

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil && !configYes {
		accepted, err := confirm(r.Theme(), "Overwrite "+path+" with the defaults?")
		if err != nil {
			return err
		}
		if !accepted {
			fmt.Fprintln(out, r.RenderNotice("config left unchanged"))
			return nil
		}
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", statErr)
	}

	if err := config.EnsureDirectories(); err != nil {
		return err
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintln(out, r.RenderSuccess("default config written to "+path))
	return nil
}

func confirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(styles.NewConfirm(theme, message)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	model, ok := final.(styles.ConfirmModel)
	return ok && model.Accepted(), nil
}
