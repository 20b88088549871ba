package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daviddao/hlbar/internal/config"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Print the current clock color as bar markup",
	Long: `color prints ^fg(<normal>)^bg(<clock color>) for the current time, so
other bar producers can reuse the clock's background color.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), colorMarkup(cfg, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
}

func colorMarkup(cfg *config.Config, now time.Time) string {
	return fmt.Sprintf("^fg(%s)^bg(%s)", cfg.Theme.Normal, cfg.Style().Clock.At(now).Color)
}
