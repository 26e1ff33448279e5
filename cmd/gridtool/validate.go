package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/decker502/hophop/pkg/config"
	"github.com/decker502/hophop/pkg/game"
	"github.com/decker502/hophop/pkg/grid"
	"github.com/decker502/hophop/pkg/placement"
	"github.com/decker502/hophop/pkg/scenes"
)

var flagResources string

var (
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	titleStyle = lipgloss.NewStyle().Underline(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var validateCmd = &cobra.Command{
	Use:   "validate <layout.yaml>...",
	Short: "Run layout scripts headlessly and validate every placement",
	Long: `Runs each layout script against a recording scene (no window), then checks
every placement against the coordinates it was created from.

Image content bounds come from the resource manifest given with --resources;
without it every image is treated as a fully opaque 32x32 tile.

Exits non-zero when a layout fails to load or any placement is INVALID.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagResources, "resources", "", "Resource manifest for image content bounds")
}

func runValidate(cmd *cobra.Command, args []string) error {
	var content scenes.ContentSource
	if flagResources != "" {
		rm := game.NewHeadlessResourceManager()
		if err := rm.LoadResourceConfig(flagResources); err != nil {
			return err
		}
		logger.Debug("resources loaded", "manifest", flagResources, "images", len(rm.ResourceIDs()))
		content = rm
	}

	totalFailed := 0
	for _, path := range args {
		failed, err := validateLayout(cmd.OutOrStdout(), activeGrid, content, path)
		if err != nil {
			return err
		}
		totalFailed += failed
	}

	if totalFailed > 0 {
		return fmt.Errorf("%d placement(s) invalid", totalFailed)
	}
	logger.Info("all placements valid", "layouts", len(args))
	return nil
}

// validateLayout 执行一个布局脚本并输出每个放置的校验结果，返回失败数量
func validateLayout(w io.Writer, g *grid.Grid, content scenes.ContentSource, path string) (int, error) {
	layout, err := config.LoadLayoutConfig(path)
	if err != nil {
		return 0, err
	}
	if err := layout.CheckCoordinates(g); err != nil {
		return 0, fmt.Errorf("layout %s: %w", path, err)
	}

	rec := scenes.NewRecorder(content)
	registry := placement.NewRegistry(g, rec)
	if _, err := layout.Apply(registry); err != nil {
		return 0, err
	}

	results := placement.NewValidator(g, registry).ValidateAll()
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", layout.ID, path)))
	for _, res := range results {
		fmt.Fprintln(w, formatResult(res))
	}

	passed, failed := placement.Summary(results)
	fmt.Fprintf(w, "%d valid, %d invalid, %d scene objects\n\n", passed, failed, rec.Len())
	return failed, nil
}

func formatResult(res placement.Result) string {
	status := passStyle.Render("PASS")
	if !res.Valid {
		status = failStyle.Render("FAIL")
	}

	line := fmt.Sprintf("  %s %-20s expected (%g, %g) actual (%g, %g)",
		status, res.ID,
		res.Expected.Center.X, res.Expected.Center.Y,
		res.Actual.Center.X, res.Actual.Center.Y)
	if res.Err != nil {
		line += " " + dimStyle.Render(res.Err.Error())
	}
	return line
}
