package main

import (
	"fmt"

	"github.com/Veraticus/passforge/internal/cli"
	"github.com/Veraticus/passforge/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List password types",
		Long:  `Display every password type with its allowed length range and default options.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, cli.FormatTitle("Password types")); err != nil {
				return err
			}
			return cli.WriteCategories(out, model.Categories())
		},
	}
}
