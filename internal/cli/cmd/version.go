package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shower/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer().RenderVersion(buildInfo))
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print a single plain line")
	rootCmd.AddCommand(versionCmd)
}

func renderer() *styles.Renderer {
	return styles.NewRenderer(styles.NewTheme())
}
