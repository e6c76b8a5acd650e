package cli

import (
	"context"
	"fmt"

	"github.com/khalid-nowaf/trebuchet/pkg/calibration"
	"github.com/pkg/errors"
)

type SumCmd struct {
	Files       []string `arg:"" help:"Input files with one calibration line per line, - for stdin"`
	Mode        string   `help:"Values to compute: both, digits (part1) or words (part2)" enum:"both,digits,words" default:"both"`
	Vocabulary  string   `help:"YAML file replacing the one..nine vocabulary" type:"existingfile"`
	SkipInvalid bool     `help:"Skip lines without value instead of failing"`
	Concurrency int      `help:"Lines scanned in parallel, 0 for the number of CPUs" default:"0"`
	Report      string   `help:"Write per-line results as none, csv, tsv or json" enum:"none,csv,tsv,json" default:"none"`
	Output      string   `help:"Directory of the report files" type:"existingdir" default:"."`
	Drop        []string `help:"Report columns to leave out"`
}

// Run executes the sum command.
func (cmd *SumCmd) Run(ctx *Context) error {
	lines, err := readLines(cmd.Files, ctx.Stdin)
	if err != nil {
		return err
	}
	ctx.Logger.Info("input read", "files", len(cmd.Files), "lines", len(lines))

	calibrators, err := buildCalibrators(ctx, cmd.Mode, cmd.Vocabulary)
	if err != nil {
		return err
	}

	for _, calibrator := range calibrators {
		report, err := calibrator.Calibrate(context.Background(), lines, cmd.Concurrency, cmd.SkipInvalid)
		if err != nil {
			return errors.Wrapf(err, "%s", calibrator.Mode())
		}

		fmt.Fprintf(ctx.Out, "%s: %d\n", partName(calibrator.Mode()), report.Total)
		if report.Skipped > 0 {
			ctx.Logger.Warn("lines skipped", "mode", calibrator.Mode(), "skipped", report.Skipped)
		}

		if cmd.Report == "none" {
			continue
		}
		filePath, err := NewWriter(cmd.Report).Write(report, cmd.Output, cmd.Drop)
		if err != nil {
			return errors.Wrap(err, "failed to write report")
		}
		ctx.Logger.Info("report written", "path", filePath)
	}

	return nil
}

func partName(mode calibration.Mode) string {
	if mode == calibration.Digits {
		return "part1"
	}
	return "part2"
}

// buildCalibrators returns one calibrator per selected mode, digits first.
func buildCalibrators(ctx *Context, mode string, vocabularyFile string) ([]*calibration.Calibrator, error) {
	modes := []calibration.Mode{calibration.Digits, calibration.Words}
	if mode != "both" {
		m, err := calibration.ParseMode(mode)
		if err != nil {
			return nil, err
		}
		modes = []calibration.Mode{m}
	}

	opts := []calibration.Option{calibration.WithLogger(ctx.Logger)}
	if vocabularyFile != "" {
		vocabulary, err := calibration.LoadVocabulary(vocabularyFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, calibration.WithVocabulary(vocabulary))
	}

	calibrators := make([]*calibration.Calibrator, 0, len(modes))
	for _, m := range modes {
		c, err := calibration.New(append(opts, calibration.WithMode(m))...)
		if err != nil {
			return nil, err
		}
		calibrators = append(calibrators, c)
	}
	return calibrators, nil
}
