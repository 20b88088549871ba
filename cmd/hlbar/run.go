package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/daviddao/hlbar/internal/config"
	"github.com/daviddao/hlbar/internal/logging"
)

var errNoTerminal = errors.New("run needs a terminal on stdout; use `hlbar snapshot` to render without one")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Draw screen 0's bars in the terminal",
	Long: `run reads commands from stdin (or --input) and draws screen 0's top bar
on the first terminal row and its bottom bar on the last. The bars follow
config and icon changes. End of input stops reading; the bars stay up until
you quit.`,
	Args: cobra.NoArgs,
	RunE: runBar,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBar(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}

	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the bar, so logs go to a file.
	level, _ := logging.ParseLevel(cfg.Log.Level)
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = logging.DefaultLogPath
	}
	log, logFile, err := logging.OpenFile(logPath, level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	in, err := openInput()
	if err != nil {
		return err
	}
	defer in.Close()

	m := newBarModel(cfg, cfgPath, log)
	if cfgPath != "" || cfg.Icons.Dir != "" {
		w, err := config.NewWatcher(cfgPath, cfg.Icons.Dir, log)
		if err != nil {
			log.Warn("not watching config", "err", err)
		} else {
			m.watcher = w
		}
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if inputFlag == "" {
		// Commands arrive on stdin, so keys come from the controlling tty.
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(m, opts...)

	// Feed input lines into the event loop in order.
	go func() {
		err := readLines(in, func(line string) {
			p.Send(lineMsg(line))
		})
		p.Send(inputClosedMsg{err: err})
	}()

	// Feed config and icon change events into the event loop.
	if m.watcher != nil {
		go func() {
			for range m.watcher.Changes() {
				p.Send(configChangedMsg{})
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
