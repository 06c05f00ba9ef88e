// Command facesnap renders watch faces to image files without a device or a
// window, one scenario from flags or a batch from a toml or yaml file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"slowtime/internal/buildinfo"
	"slowtime/internal/face"
	"slowtime/internal/gfx"
	"slowtime/internal/logger"
)

type stderrSink struct{}

func (stderrSink) WriteLineString(s string) { fmt.Fprintln(os.Stderr, s) }
func (stderrSink) WriteLineBytes(b []byte)  { fmt.Fprintln(os.Stderr, string(b)) }

var (
	debug bool

	renderScenario Scenario
	renderBattery  int
	renderSteps    int
	renderLink     string
	renderOutput   string

	batchDir string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "facesnap",
		Short:        "Render watch faces to PNG or BMP",
		Version:      buildinfo.String(),
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newFacesCmd())
	return rootCmd
}

func newLogger() zerolog.Logger {
	return logger.New(stderrSink{}, logger.Level(debug, false), true)
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single face state",
		Args:  cobra.NoArgs,
		RunE:  runRenderCmd,
	}
	f := cmd.Flags()
	f.StringVar(&renderScenario.Face, "face", "slow", "face preset: "+strings.Join(face.PresetNames(), ", "))
	f.StringVar(&renderScenario.Time, "time", "", "clock reading as HH:MM (default now)")
	f.StringVar(&renderScenario.Date, "date", "", "date as YYYY-MM-DD (default today)")
	f.IntVar(&renderBattery, "battery", 100, "battery percent")
	f.BoolVar(&renderScenario.Charging, "charging", false, "battery is charging")
	f.IntVar(&renderSteps, "steps", -1, "step goal percent, negative hides the step ring")
	f.StringVar(&renderLink, "link", "", "phone link: connected, disconnected or empty for unknown")
	f.IntVar(&renderScenario.Width, "width", 144, "display width in pixels")
	f.IntVar(&renderScenario.Height, "height", 168, "display height in pixels")
	f.BoolVar(&renderScenario.Mono, "mono", false, "render black and white")
	f.IntVar(&renderScenario.Scale, "scale", 1, "integer upscale factor")
	f.StringVar(&renderScenario.Backend, "backend", string(gfx.DefaultBackend), "rasterizer: "+strings.Join(backendNames(), ", "))
	f.StringVarP(&renderOutput, "output", "o", "face.png", "output file, .png or .bmp")
	return cmd
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	sc := renderScenario
	sc.Name = "render"
	now := time.Now()
	if sc.Time == "" {
		sc.Time = now.Format("15:04")
	}
	battery := renderBattery
	sc.Battery = &battery
	if renderSteps >= 0 {
		steps := renderSteps
		sc.Steps = &steps
	}
	switch strings.ToLower(renderLink) {
	case "":
	case "connected", "on", "true":
		c := true
		sc.Link = &c
	case "disconnected", "off", "false":
		c := false
		sc.Link = &c
	default:
		return fmt.Errorf("invalid --link %q", renderLink)
	}
	sc.Output = renderOutput

	if err := writeScenario(sc, "", now, newLogger()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderOutput)
	return nil
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <scenarios.toml|scenarios.yaml>",
		Short: "Render every scenario in a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatchCmd,
	}
	cmd.Flags().StringVarP(&batchDir, "dir", "d", ".", "directory for outputs without an absolute path")
	return cmd
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	scenarios, err := LoadScenarios(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(batchDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	log := newLogger()
	now := time.Now()
	failed := 0
	for _, sc := range scenarios {
		if sc.Output == "" {
			sc.Output = sc.Name + ".png"
		}
		if err := writeScenario(sc, batchDir, now, log); err != nil {
			log.Error().Err(err).Str("scenario", sc.Name).Msg("render failed")
			failed++
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), outputPath(batchDir, sc.Output))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}

func newFacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faces",
		Short: "List face presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range face.PresetNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func backendNames() []string {
	var names []string
	for _, b := range gfx.Backends() {
		names = append(names, string(b))
	}
	return names
}

func outputPath(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func writeScenario(sc Scenario, dir string, now time.Time, log zerolog.Logger) error {
	img, err := Render(sc, now, log)
	if err != nil {
		return err
	}
	path := outputPath(dir, sc.Output)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(f, img, FormatFor(path)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
