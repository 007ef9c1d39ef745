package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	var first string
	var last string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List the PCs owned by a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if first == "" && last == "" {
				return fmt.Errorf("at least one of --first or --last is required")
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			matches := a.directory.SearchByOwnerName(cmd.Context(), first, last)
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no PCs found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPCs(matches))
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "Owner first name")
	cmd.Flags().StringVar(&last, "last", "", "Owner last name")
	return cmd
}
