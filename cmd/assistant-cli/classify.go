package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
)

func runClassify(cmd *cobra.Command, args []string) error {
	mode := model.Mode(classifyMode)
	if !mode.IsValid() {
		return fmt.Errorf("invalid --mode %q, want chat or voice", classifyMode)
	}

	r := router.New(newLogger())
	for _, text := range args {
		out := r.Classify(cmd.Context(), mode, text)
		if out.Command != router.CommandNone {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s/%s\n", text, out.Intent, out.Command)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", text, out.Intent)
	}
	return nil
}
