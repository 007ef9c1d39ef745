package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSendEmailCommand() *cobra.Command {
	var to string
	var message string

	cmd := &cobra.Command{
		Use:   "send-email",
		Short: "Deliver a message to the first powered-on PC of an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.directory.SendEmail(cmd.Context(), to, message); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "delivered to %s\n", to)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient email address")
	cmd.Flags().StringVar(&message, "message", "", "Message body")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
