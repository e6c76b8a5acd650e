package cli

import (
	"fmt"

	"github.com/khalid-nowaf/trebuchet/pkg/calibration"
	"gopkg.in/yaml.v3"
)

type VocabCmd struct {
	Vocabulary string `help:"YAML file replacing the one..nine vocabulary" type:"existingfile"`
	Reversed   bool   `help:"List the words of the backward trie"`
	Format     string `help:"Output format: text or yaml" enum:"text,yaml" default:"text"`
}

// Run lists the words stored in the calibrator's trie.
func (cmd *VocabCmd) Run(ctx *Context) error {
	calibrators, err := buildCalibrators(ctx, calibration.Words.String(), cmd.Vocabulary)
	if err != nil {
		return err
	}
	vocabulary := calibrators[0].Vocabulary(cmd.Reversed)

	if cmd.Format == "yaml" {
		data, err := yaml.Marshal(vocabulary)
		if err != nil {
			return err
		}
		_, err = ctx.Out.Write(data)
		return err
	}

	for _, w := range vocabulary {
		fmt.Fprintf(ctx.Out, "%s\t%d\n", w.Text, w.Value)
	}
	return nil
}
