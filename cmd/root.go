package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/desktop-blur/internal/blur"
	"github.com/mj1618/desktop-blur/internal/output"
	"github.com/mj1618/desktop-blur/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "desktop-blur",
	Short: "Apply a translucent blur-behind effect to desktop windows",
	Long: `A CLI tool that applies an acrylic or blur-behind background effect to a
window, falling back to the compositor's documented blur-behind API when the
accent policy is not available.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each OS call to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		blur.SetLogger(newLogger(verbose))

		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f

		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
