package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/exceptions"
	"medvisit-client/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "medvisit",
		Short:         "Terminal client for the medical visit booking service",
		Version:       a.InternalConfig.App.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newSlotsCmd(a),
		newReserveCmd(a),
		newVisitsCmd(a),
		newCancelCmd(a),
		newProfileCmd(a),
		newNotificationsCmd(a),
	)
	return rootCmd
}

// operationContext builds the context for a single user action: a fresh
// request id, deliberately without a deadline. The uniform request
// timeout is applied per network call, never across a user interaction
// such as the confirmation prompt.
func (a *app) operationContext() context.Context {
	return utils.WithRequestID(context.Background())
}

// networkContext bounds one backend call with the uniform request
// timeout. Commands use it when they call a usecase directly; the views
// apply the same timeout internally.
func (a *app) networkContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(a.InternalConfig.API.RequestTimeoutInSec) * time.Second
	return context.WithTimeout(ctx, timeout)
}

// clientMessage extracts the user-facing message of an error; dev details
// stay in the logs.
func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

// fail renders the error inline the way every screen does, adding the
// login hint for authorization failures.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", clientMessage(err))
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
		fmt.Fprintln(cmd.ErrOrStderr(), "Run 'medvisit login' to sign in.")
	}
	return err
}
