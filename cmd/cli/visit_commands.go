package main

import (
	"fmt"
	"text/tabwriter"

	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

func newVisitsCmd(a *app) *cobra.Command {
	var upcomingOnly bool

	cmd := &cobra.Command{
		Use:   "visits",
		Short: "List your visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.operationContext()

			if err := a.VisitListView.Refresh(ctx); err != nil {
				return fail(cmd, err)
			}
			renderVisits(cmd, a.VisitListView.Visits(upcomingOnly))
			return nil
		},
	}
	cmd.Flags().BoolVar(&upcomingOnly, "upcoming", false, "hide visits that already started")
	return cmd
}

func renderVisits(cmd *cobra.Command, visits []models.Visit) {
	if len(visits) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no visits found")
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTART\tEND\tDOCTOR")
	for i := range visits {
		visit := &visits[i]
		doctor := fmt.Sprintf("doctor #%d", visit.DoctorID)
		if visit.Doctor != nil {
			doctor = fmt.Sprintf("%s %s", visit.Doctor.Name, visit.Doctor.Surname)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", visit.VisitID, visit.DateStart, visit.DateEnd, doctor)
	}
	w.Flush()
}

func newCancelCmd(a *app) *cobra.Command {
	var visitID int64

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel one of your visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.operationContext()

			if err := a.VisitListView.Cancel(ctx, visitID); err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), constvars.VisitCancelledSuccess)
			return nil
		},
	}
	cmd.Flags().Int64Var(&visitID, "visit", 0, "visit id from 'medvisit visits'")
	cmd.MarkFlagRequired("visit")
	return cmd
}
