package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/daviddao/hlbar/internal/bar"
	"github.com/daviddao/hlbar/internal/canvas"
	"github.com/daviddao/hlbar/internal/command"
	"github.com/daviddao/hlbar/internal/config"
	"github.com/daviddao/hlbar/internal/imagecache"
	"github.com/daviddao/hlbar/internal/snapshot"
	"github.com/daviddao/hlbar/internal/surface"
)

var (
	snapshotJSON  bool
	snapshotPNG   string
	snapshotWidth int
	snapshotOps   bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Apply commands until end of input, then dump every bar",
	Long: `snapshot reads commands until end of input, composes every bar and
prints the layout as JSON and/or writes one PNG per bar. With neither --json
nor --png it prints JSON.`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "print the composed layout as JSON")
	snapshotCmd.Flags().StringVar(&snapshotPNG, "png", "", "write bar-<screen>-<dock>.png files into this directory")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 0, "bar width in pixels (default: bar.width from config)")
	snapshotCmd.Flags().BoolVar(&snapshotOps, "ops", false, "include recorded draw operations in the JSON")
	rootCmd.AddCommand(snapshotCmd)
}

// jsonOutput is the structure for snapshot --json.
type jsonOutput struct {
	Bars  []jsonBar `json:"bars"`
	Stats jsonStats `json:"stats"`
}

type jsonBar struct {
	Screen int         `json:"screen"`
	Dock   string      `json:"dock"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Areas  []jsonArea  `json:"areas"`
	Ops    []canvas.Op `json:"ops,omitempty"`
}

type jsonArea struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Float   string `json:"float"`
	Weight  int    `json:"weight"`
	X       int    `json:"x"`
	Width   int    `json:"width"`
	Content string `json:"content"`
}

type jsonStats struct {
	TotalAreas   int    `json:"total_areas"`
	VisibleAreas int    `json:"visible_areas"`
	EmptyBars    int    `json:"empty_bars"`
	Lines        int    `json:"lines"`
	Rejected     int    `json:"rejected"`
	BuiltAt      string `json:"built_at"`
}

// feedStats counts the input a snapshot was built from.
type feedStats struct {
	lines, rejected int
}

// feed applies every line of r to d.
func feed(r io.Reader, d *command.Dispatcher) (feedStats, error) {
	var st feedStats
	err := readLines(r, func(line string) {
		st.lines++
		if d.Handle(line) != nil {
			st.rejected++
		}
	})
	return st, err
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	log := stderrLogger(cfg)

	in, err := openInput()
	if err != nil {
		return err
	}
	defer in.Close()

	reg := bar.NewRegistry(cfg.Bar.Screens)
	images := imagecache.New(log)
	disp := command.NewDispatcher(reg, cfg.Style(), log)
	st, err := feed(in, disp)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	width := cfg.Bar.Width
	if snapshotWidth > 0 {
		width = snapshotWidth
	}
	engine := cfg.Engine()

	if snapshotPNG != "" {
		if err := writePNGs(reg, cfg, images, snapshotPNG, width); err != nil {
			return err
		}
		if !snapshotJSON {
			return nil
		}
	}

	measurer := surface.NewRaster(1, 1, images)
	snap := snapshot.Build(reg, engine, measurer, width, cfg.Bar.Height)
	out := buildJSONOutput(snap, st, snapshotOps)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	return nil
}

// writePNGs renders every bar into its own PNG under dir.
func writePNGs(reg *bar.Registry, cfg *config.Config, images *imagecache.Cache, dir string, width int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("png dir: %w", err)
	}
	engine := cfg.Engine()
	for _, b := range reg.Bars() {
		r := surface.NewRaster(width, cfg.Bar.Height, images)
		engine.Render(r, b.Areas(), width, cfg.Bar.Height)
		name := fmt.Sprintf("bar-%d-%s.png", b.Key.Screen, b.Key.Dock)
		if err := r.WriteFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// buildJSONOutput converts a snapshot into the JSON output structure.
func buildJSONOutput(snap *snapshot.DataSnapshot, st feedStats, withOps bool) jsonOutput {
	bars := make([]jsonBar, len(snap.Bars))
	for i, b := range snap.Bars {
		areas := make([]jsonArea, len(b.Areas))
		for j, p := range b.Areas {
			areas[j] = jsonArea{
				ID:      p.ID,
				Kind:    p.Kind.String(),
				Float:   p.Float.String(),
				Weight:  p.Weight,
				X:       p.X,
				Width:   p.Width,
				Content: p.Content,
			}
		}
		bars[i] = jsonBar{
			Screen: b.Key.Screen,
			Dock:   b.Key.Dock.String(),
			Width:  b.Width,
			Height: b.Height,
			Areas:  areas,
		}
		if withOps {
			bars[i].Ops = b.Ops
		}
	}

	return jsonOutput{
		Bars: bars,
		Stats: jsonStats{
			TotalAreas:   snap.TotalAreas,
			VisibleAreas: snap.VisibleAreas,
			EmptyBars:    snap.EmptyBars,
			Lines:        st.lines,
			Rejected:     st.rejected,
			BuiltAt:      snap.BuiltAt.Format(time.RFC3339),
		},
	}
}
