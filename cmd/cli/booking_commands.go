package main

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"medvisit-client/internal/app/services/schedule"
	"medvisit-client/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

func newSlotsCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show the bookable slot grid for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(constvars.DateFormat)
			}
			ctx := a.operationContext()

			if err := a.BookingView.SelectDate(ctx, date); err != nil {
				return fail(cmd, err)
			}
			grid, err := a.BookingView.Grid()
			if err != nil {
				return fail(cmd, err)
			}
			renderGrid(cmd, date, grid)
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "selected date, YYYY-MM-DD (default today)")
	return cmd
}

func renderGrid(cmd *cobra.Command, date string, grid []schedule.Slot) {
	fmt.Fprintf(cmd.OutOrStdout(), "Available slots for %s\n", date)
	if len(grid) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no offerable slots left for this date")
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DOCTOR\tID\tHOUR\tSTATUS")
	for _, slot := range grid {
		fmt.Fprintf(w, "%s\t%d\t%d:00\t%s\n", slot.Practitioner.DisplayName, slot.Practitioner.ID, slot.Hour, slot.Status)
	}
	w.Flush()
}

func newReserveCmd(a *app) *cobra.Command {
	var (
		date     string
		doctorID int64
		hour     int
		skipAsk  bool
	)

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Book an available slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(constvars.DateFormat)
			}
			ctx := a.operationContext()

			if err := a.BookingView.SelectDate(ctx, date); err != nil {
				return fail(cmd, err)
			}

			confirm := func(slot schedule.Slot) bool {
				if skipAsk {
					return true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Book %s at %d:00 on %s? [y/N]: ",
					slot.Practitioner.DisplayName, slot.Hour, date)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				return answer == "y" || answer == "yes"
			}

			notice, err := a.BookingView.Reserve(ctx, doctorID, hour, confirm)
			if err != nil {
				return fail(cmd, err)
			}
			if notice == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "reservation aborted")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), notice)
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "selected date, YYYY-MM-DD (default today)")
	cmd.Flags().Int64Var(&doctorID, "doctor", 0, "doctor id from the slot grid")
	cmd.Flags().IntVar(&hour, "hour", 0, "slot hour, e.g. 12")
	cmd.Flags().BoolVarP(&skipAsk, "yes", "y", false, "skip the confirmation prompt")
	cmd.MarkFlagRequired("doctor")
	cmd.MarkFlagRequired("hour")
	return cmd
}
