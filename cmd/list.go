package cmd

import (
	"fmt"

	"github.com/mj1618/desktop-blur/internal/output"
	"github.com/mj1618/desktop-blur/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows",
	Long:  "List top-level windows with their handle, executable, title, PID, and bounds.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().String("app", "", "Filter windows by executable name")
	listCmd.Flags().Bool("all", false, "Include hidden windows")
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")
	all, _ := cmd.Flags().GetBool("all")

	if provider.WindowLister == nil {
		return fmt.Errorf("window listing not available on this platform")
	}

	windows, err := provider.WindowLister.ListWindows(platform.ListOptions{
		PID:         pid,
		App:         appName,
		VisibleOnly: !all,
	})
	if err != nil {
		return err
	}

	return output.Print(windows)
}
