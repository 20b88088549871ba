// hlbar renders a desktop status bar driven by line commands.
//
// Producers write commands such as `add_area clk 0 bottom 0 right clock`
// and `text cpu 12%` to hlbar's input; hlbar lays the areas out and draws
// them.
//
// Usage:
//
//	producer | hlbar run               # Draw screen 0's bars in the terminal
//	hlbar run --input /run/hlbar.fifo  # Read commands from a file or FIFO
//	producer | hlbar snapshot --json   # Dump every bar's layout as JSON
//	producer | hlbar snapshot --png .  # Write one PNG per bar
//	hlbar color                        # Print the clock color as markup
//	hlbar --version                    # Print version and exit
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/daviddao/hlbar/internal/config"
	"github.com/daviddao/hlbar/internal/logging"
)

// Version is set via ldflags at build time (e.g. -X main.Version=v0.1.0).
var Version = "dev"

var (
	configFlag string
	inputFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "hlbar",
	Short: "Status bar renderer driven by line commands",
	Long: `hlbar reads line commands describing named areas (workspace lists,
layout indicators, a color clock, free text with inline markup) and renders
them into top and bottom bars.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: auto-discover)")
	rootCmd.PersistentFlags().StringVar(&inputFlag, "input", "", "read commands from this file or FIFO instead of stdin")
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("hlbar {{.Version}}\n")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hlbar: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig discovers and loads the config named by --config.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.Load(configFlag)
	if err != nil {
		return nil, "", fmt.Errorf("config: %w", err)
	}
	return cfg, path, nil
}

// stderrLogger is the logger for one-shot commands.
func stderrLogger(cfg *config.Config) *slog.Logger {
	level, _ := logging.ParseLevel(cfg.Log.Level)
	return logging.New(os.Stderr, level)
}

// openInput returns the command source named by --input, or stdin.
func openInput() (io.ReadCloser, error) {
	if inputFlag == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(inputFlag)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return f, nil
}

// maxLine bounds a single command line.
const maxLine = 1 << 20

// readLines calls handle for every line of r, in order, until EOF.
func readLines(r io.Reader, handle func(string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		handle(sc.Text())
	}
	return sc.Err()
}
