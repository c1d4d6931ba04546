package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prevet-dev/prevet/application/schema"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the report wire format",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := schema.ReportSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
