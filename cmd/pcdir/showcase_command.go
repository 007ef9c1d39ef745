package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pcdir/internal/directory/models"
	person "pcdir/internal/person/models"
)

// newShowcaseCommand walks the seeded fleet through an upgrade campaign:
// notify every owner of an outdated machine, open a maintenance window on
// those machines, show that delivery is blocked while the window is open,
// then release and confirm delivery works again.
func newShowcaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "showcase",
		Short: "Run the upgrade-campaign walkthrough on the demo fleet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			outdated := make([]*models.Entry, 0)
			owners := make(map[person.EmailAddress]struct{})
			for _, pc := range a.directory.ListPCs(ctx) {
				if pc.OS().IsOutdated() && pc.Owner() != nil {
					outdated = append(outdated, pc)
					owners[pc.Owner().Email] = struct{}{}
				}
			}
			if len(outdated) == 0 {
				fmt.Fprintln(out, "nothing to upgrade")
				return nil
			}

			// Notify all affected owners concurrently.
			g, gctx := errgroup.WithContext(ctx)
			for email := range owners {
				email := email
				g.Go(func() error {
					return a.directory.SendEmailTo(gctx, email, "upgrade scheduled!")
				})
			}
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to notify owners: %w", err)
			}
			fmt.Fprintf(out, "notified %d owner(s) of %d outdated PC(s)\n", len(owners), len(outdated))

			// Open the maintenance window and upgrade.
			handles := make([]*models.MaintenanceHandle, 0, len(outdated))
			for _, pc := range outdated {
				handle, err := pc.AcquireMaintenanceLock("OS upgrade campaign")
				if err != nil {
					for _, h := range handles {
						h.Release()
					}
					return fmt.Errorf("failed to lock pc %d: %w", pc.ID(), err)
				}
				handles = append(handles, handle)
				handle.UpdateOS(models.Windows(models.OSWindows11))
			}

			// While the window is open, owners with only locked machines are unreachable.
			blocked := 0
			for email := range owners {
				if err := a.directory.SendEmailTo(ctx, email, "done yet?"); err != nil {
					blocked++
				}
			}
			fmt.Fprintf(out, "maintenance window open, %d owner(s) unreachable\n", blocked)

			for _, h := range handles {
				h.Release()
			}

			// Everyone is reachable again.
			for email := range owners {
				if err := a.directory.SendEmailTo(ctx, email, "you are now on Windows 11!"); err != nil {
					return fmt.Errorf("delivery after release should succeed: %w", err)
				}
			}
			fmt.Fprintln(out, "maintenance window closed, all owners notified")
			fmt.Fprintln(out, renderPCs(a.directory.ListPCs(ctx)))
			return nil
		},
	}
}
