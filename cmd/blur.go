package cmd

import (
	"fmt"

	"github.com/mj1618/desktop-blur/internal/blur"
	"github.com/mj1618/desktop-blur/internal/model"
	"github.com/mj1618/desktop-blur/internal/output"
	"github.com/mj1618/desktop-blur/internal/platform"
	"github.com/spf13/cobra"
)

// BlurResult is the output of a blur attempt.
type BlurResult struct {
	OK       bool        `yaml:"ok"              json:"ok"`
	Action   string      `yaml:"action"          json:"action"`
	Applied  bool        `yaml:"applied"         json:"applied"`
	Method   blur.Method `yaml:"method"          json:"method"`
	WindowID int         `yaml:"window-id"       json:"window-id"`
	App      string      `yaml:"app,omitempty"   json:"app,omitempty"`
	Title    string      `yaml:"title,omitempty" json:"title,omitempty"`
	Tint     blur.Tint   `yaml:"tint"            json:"tint"`
	Steps    []blur.Step `yaml:"steps"           json:"steps"`
}

var blurCmd = &cobra.Command{
	Use:   "blur",
	Short: "Apply a blur-behind effect to a window",
	Long: `Apply a translucent blur-behind effect to one window.

The acrylic accent policy is tried first, then plain blur-behind through the
same policy, then the compositor's blur-behind API. Failing to apply the effect
is reported but is not an error unless --require is set.

Examples:
  desktop-blur blur --window "Notepad"
  desktop-blur blur --window-id 0x1A2B --tint "#C0102030"
  desktop-blur blur --app wt.exe --tint slategray --alpha 200`,
	RunE: runBlur,
}

func init() {
	rootCmd.AddCommand(blurCmd)
	blurCmd.Flags().String("app", "", "Target window by executable name")
	blurCmd.Flags().String("window", "", "Target window by title substring")
	blurCmd.Flags().String("window-id", "", "Target window by handle (decimal or 0x hex)")
	blurCmd.Flags().Int("pid", 0, "Target window by process ID")
	blurCmd.Flags().String("tint", blur.DefaultTint.String(), "Acrylic tint: #RRGGBB, #AARRGGBB, or a color name")
	blurCmd.Flags().Int("alpha", 0, "Override the tint alpha (1-255)")
	blurCmd.Flags().Bool("require", false, "Exit with an error if no mechanism applied the effect")
	blurCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runBlur(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	appName, _ := cmd.Flags().GetString("app")
	window, _ := cmd.Flags().GetString("window")
	windowIDStr, _ := cmd.Flags().GetString("window-id")
	pid, _ := cmd.Flags().GetInt("pid")
	tintStr, _ := cmd.Flags().GetString("tint")
	require, _ := cmd.Flags().GetBool("require")

	var windowID int
	if windowIDStr != "" {
		if windowID, err = platform.ParseWindowID(windowIDStr); err != nil {
			return err
		}
	}

	alpha := 0
	if cmd.Flags().Changed("alpha") {
		alpha, _ = cmd.Flags().GetInt("alpha")
		if alpha < 1 || alpha > 255 {
			return fmt.Errorf("--alpha must be between 1 and 255, got %d", alpha)
		}
	}

	tint, err := parseTintFlags(tintStr, alpha)
	if err != nil {
		return err
	}

	target := model.Target{App: appName, Window: window, WindowID: windowID, PID: pid}
	result, err := applyBlur(provider, provider.WindowLister, target, blur.Options{Tint: tint})
	if err != nil {
		return err
	}

	if err := output.Print(result); err != nil {
		return err
	}
	if require && !result.Applied {
		return fmt.Errorf("blur-behind could not be applied to window 0x%X", result.WindowID)
	}
	return nil
}

// parseTintFlags combines --tint and --alpha. An alpha of 0 keeps the tint's own.
func parseTintFlags(tintStr string, alpha int) (blur.Tint, error) {
	tint := blur.DefaultTint
	if tintStr != "" {
		t, err := blur.ParseTint(tintStr)
		if err != nil {
			return 0, err
		}
		tint = t
	}
	if alpha > 0 {
		tint = tint.WithAlpha(uint8(alpha))
	}
	return tint, nil
}

// applyBlur resolves the target window through lister and applies the effect.
// Only resolution problems are errors; an effect that did not apply is a
// result with Applied false.
func applyBlur(provider *platform.Provider, lister platform.WindowLister, target model.Target, opts blur.Options) (BlurResult, error) {
	if provider.Compositor == nil {
		return BlurResult{}, fmt.Errorf("window effects not available on this platform")
	}

	w, err := platform.ResolveWindow(lister, target)
	if err != nil {
		return BlurResult{}, err
	}

	tint := opts.Tint
	if tint.Alpha() == 0 {
		tint = blur.DefaultTint
	}

	res := blur.Apply(provider.Compositor, uintptr(w.ID), blur.Options{Tint: tint})
	return BlurResult{
		OK:       true,
		Action:   "blur",
		Applied:  res.Applied,
		Method:   res.Method,
		WindowID: w.ID,
		App:      w.App,
		Title:    w.Title,
		Tint:     tint,
		Steps:    res.Steps,
	}, nil
}
