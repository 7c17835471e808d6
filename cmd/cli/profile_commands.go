package main

import (
	"fmt"

	"medvisit-client/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.operationContext()

			if err := a.ProfileView.Load(ctx); err != nil {
				return fail(cmd, err)
			}
			profile, err := a.ProfileView.Profile()
			if err != nil {
				return fail(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Username: %s\n", profile.Username)
			fmt.Fprintf(out, "Name:     %s %s\n", profile.Name, profile.Surname)
			fmt.Fprintf(out, "Email:    %s\n", profile.Email)
			fmt.Fprintf(out, "Phone:    %s\n", profile.Phone)
			if profile.Patient != nil {
				fmt.Fprintf(out, "PESEL:    %s\n", profile.Patient.Pesel)
				fmt.Fprintf(out, "SMS notifications: %s\n", onOff(profile.Patient.SmsNotificationsEnabled))
			}
			if profile.Doctor != nil {
				fmt.Fprintf(out, "License:  %s\n", profile.Doctor.JobIdNumber)
			}
			return nil
		},
	}
}

func newNotificationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Toggle SMS visit reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.operationContext()

			if err := a.ProfileView.Load(ctx); err != nil {
				return fail(cmd, err)
			}
			enabled, err := a.ProfileView.ToggleSmsNotifications(ctx)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: now %s\n", constvars.SmsNotificationsUpdatedSuccess, onOff(enabled))
			return nil
		},
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
