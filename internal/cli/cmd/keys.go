package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shower/internal/cli/styles"
	"github.com/bnema/shower/internal/infrastructure/config"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List keyboard shortcuts",
	Long:  `List the keyboard shortcuts in effect, from the [keybindings] section of the config file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Init(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		bindings := effectiveBindings(config.Get().Keybindings)
		fmt.Fprintln(cmd.OutOrStdout(), styles.RenderKeybindings(styles.NewTheme(), bindings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

// effectiveBindings lists every action, bound or not.
func effectiveBindings(configured map[string][]string) map[string][]string {
	out := make(map[string][]string, len(config.KeybindingActions()))
	for _, action := range config.KeybindingActions() {
		out[action] = configured[action]
	}
	return out
}
