package cli

import (
	"fmt"
)

type LineCmd struct {
	Lines      []string `arg:"" help:"Lines to calibrate"`
	Mode       string   `help:"Values to compute: both, digits or words" enum:"both,digits,words" default:"words"`
	Vocabulary string   `help:"YAML file replacing the one..nine vocabulary" type:"existingfile"`
}

// Run prints the first, last and combined value of every line.
func (cmd *LineCmd) Run(ctx *Context) error {
	calibrators, err := buildCalibrators(ctx, cmd.Mode, cmd.Vocabulary)
	if err != nil {
		return err
	}

	for _, calibrator := range calibrators {
		for i, line := range cmd.Lines {
			result := calibrator.LineValue(i+1, line)
			fmt.Fprintf(ctx.Out, "%s %s\n", calibrator.Mode(), result.String())
		}
	}
	return nil
}
