// Package commands implements the fistsum subcommands.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccin2p3/fistsum/internal/config"
	"github.com/ccin2p3/fistsum/internal/fist"
	"github.com/ccin2p3/fistsum/internal/identity"
	"github.com/ccin2p3/fistsum/internal/logging"
	"github.com/ccin2p3/fistsum/internal/report"
	"github.com/ccin2p3/fistsum/internal/summary"
)

// SummaryCommand holds the flags for the summary command.
type SummaryCommand struct {
	configPath   string
	group        string
	specialGroup string
	output       string
	histogram    string
	plot         string
	format       string
	noColor      bool

	verbose *bool
	quiet   *bool
}

// NewSummaryCommand creates and configures the summary command.
func NewSummaryCommand(verbose, quiet *bool) *cobra.Command {
	cmd := &SummaryCommand{verbose: verbose, quiet: quiet}

	cobraCmd := &cobra.Command{
		Use:   "summary [flags] FILE",
		Short: "Produce a per-owner usage report from a FiST inventory",
		Long: `Reads the given FiST inventory file (".lz4" suffix enables transparent
decompression) and writes the per-owner usage report as JSON. With
--histogram, a file-size distribution report is written as well.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "Config file path")
	cobraCmd.Flags().StringVarP(&cmd.group, "group", "g", "", "Expected group name (required unless set in config)")
	cobraCmd.Flags().StringVarP(&cmd.specialGroup, "special-group", "S", "", "Group with special treatment (root-owned objects and multiple groups allowed)")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", `Summary JSON output file ("-" for stdout)`)
	cobraCmd.Flags().StringVarP(&cmd.histogram, "histogram", "H", "", `File sizes distribution JSON output file ("-" for stdout)`)
	cobraCmd.Flags().StringVar(&cmd.plot, "plot", "", "File sizes distribution HTML chart file")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", "", "Summary output format: json or table")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output in table format")

	return cobraCmd
}

// Run executes the summary command.
func (c *SummaryCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Logging, *c.verbose, *c.quiet)

	opts := summary.Options{
		ExpectedGroup: cfg.Group,
		SpecialGroup:  cfg.SpecialGroup,
		Now:           time.Now().Unix(),
		Histogram:     cfg.HistogramEnabled(),
	}

	resolver := identity.NewResolver(identity.OSBackend{}, cfg.Group, cfg.SpecialGroup)
	acc := summary.NewAccumulator(resolver, opts)

	inventory := args[0]

	input, err := fist.Open(inventory)
	if err != nil {
		return err
	}
	defer input.Close()

	logger.Debug("scanning inventory", "file", inventory, "group", cfg.Group)

	scanErr := fist.EachRecord(input, func(rec fist.Record) error {
		acc.Add(rec)

		return nil
	})
	if scanErr != nil {
		return fmt.Errorf("%s: %w", inventory, scanErr)
	}

	rep := acc.Summarize()

	logger.Info("scan complete",
		"owners", rep.Totals.NUsers,
		"files", rep.Totals.NFiles,
		"bytes", rep.Totals.Bytes)

	writeErr := c.writeSummary(cfg, rep)
	if writeErr != nil {
		return writeErr
	}

	return c.writeHistogram(cfg, acc)
}

// loadConfig merges the config file with command-line overrides and
// validates the result.
func (c *SummaryCommand) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("group") {
		cfg.Group = c.group
	}

	if cmd.Flags().Changed("special-group") {
		cfg.SpecialGroup = c.specialGroup
	}

	if cmd.Flags().Changed("output") {
		cfg.Output = c.output
	}

	if cmd.Flags().Changed("histogram") {
		cfg.Histogram.Output = c.histogram
	}

	if cmd.Flags().Changed("plot") {
		cfg.Histogram.Plot = c.plot
	}

	if cmd.Flags().Changed("format") {
		cfg.Report.Format = c.format
	}

	if c.noColor {
		cfg.Report.NoColor = true
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

func (c *SummaryCommand) writeSummary(cfg *config.Config, rep *summary.Report) error {
	if cfg.Report.Format == config.FormatTable {
		return report.WriteTable(cfg.Output, rep, cfg.Report.NoColor)
	}

	return report.WriteJSON(cfg.Output, rep)
}

func (c *SummaryCommand) writeHistogram(cfg *config.Config, acc *summary.Accumulator) error {
	if !cfg.HistogramEnabled() {
		return nil
	}

	dist := acc.SizeDistribution()

	if cfg.Histogram.Output != "" {
		err := report.WriteJSON(cfg.Histogram.Output, dist)
		if err != nil {
			return err
		}
	}

	if cfg.Histogram.Plot != "" {
		file, err := os.Create(cfg.Histogram.Plot)
		if err != nil {
			return fmt.Errorf("create plot: %w", err)
		}

		renderErr := report.RenderPlot(file, dist)
		if renderErr != nil {
			file.Close()

			return renderErr
		}

		closeErr := file.Close()
		if closeErr != nil {
			return fmt.Errorf("close plot: %w", closeErr)
		}
	}

	return nil
}
