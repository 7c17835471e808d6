package main

import (
	"fmt"
	"strings"

	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.networkContext(a.operationContext())
			defer cancel()

			session, err := a.AuthUsecase.Login(ctx, username, password)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s as %s\n", constvars.LoginSuccess, session.Profile.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var role string
	request := new(requests.RegisterUser)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient or doctor account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.networkContext(a.operationContext())
			defer cancel()

			notice, err := a.AuthUsecase.Register(ctx, request, role)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), notice)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", constvars.RegisterRolePatient, "account role: patient or doctor")
	cmd.Flags().StringVarP(&request.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&request.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&request.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&request.Phone, "phone", "", "phone number, 9 to 15 digits")
	cmd.Flags().StringVar(&request.Pesel, "pesel", "", "PESEL number (patient accounts)")
	cmd.Flags().StringVar(&request.JobIdNumber, "job-id-number", "", "professional license number (doctor accounts)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.networkContext(a.operationContext())
			defer cancel()

			if err := a.AuthUsecase.Logout(ctx); err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), constvars.LogoutSuccess)
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.networkContext(a.operationContext())
			defer cancel()

			profile, err := a.AuthUsecase.FreshProfile(ctx)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", profile.Name, profile.Surname, profile.Username)
			fmt.Fprintf(cmd.OutOrStdout(), "roles: %s\n", strings.Join(profile.Roles, ", "))
			if profile.Patient != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "patient id: %d\n", profile.Patient.ID)
			}
			if profile.Doctor != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "doctor id: %d, license: %s\n", profile.Doctor.ID, profile.Doctor.JobIdNumber)
			}
			return nil
		},
	}
}
