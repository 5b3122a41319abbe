package main

import (
	"context"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var errRunFailed = errors.New("workflow run failed")

type setupFunc func(ctx context.Context) (contracts.WorkflowUsecase, func(), error)

func newRootCmd(setup setupFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ecare-workflow",
		Short:         "Run the eCare scheduling workflow against a healthcare API environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetErr(os.Stderr)

	rootCmd.AddCommand(runCmd(setup))
	rootCmd.AddCommand(loginCmd(setup))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

// environmentFlag registers --env; unknown names are rejected before any
// driver is opened.
func environmentFlag(cmd *cobra.Command, target *string) {
	usage := fmt.Sprintf("target environment (%s)", strings.Join(config.EnvironmentNames(), "|"))
	cmd.Flags().StringVar(target, "env", "", usage)
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if *target == "" || slices.Contains(config.EnvironmentNames(), *target) {
			return nil
		}
		return exceptions.ErrInvalidEnvironment(nil, *target)
	}
}

func runCmd(setup setupFunc) *cobra.Command {
	input := &models.RunInput{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute login, patient, provider, availability and appointment steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			usecase, closeDrivers, err := setup(ctx)
			if err != nil {
				return err
			}
			defer closeDrivers()

			run, err := usecase.Execute(ctx, input)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(run.Summary()); err != nil {
				return err
			}
			if !run.Passed() {
				cmd.PrintErrln(constvars.WorkflowRunFailedMessage + ": " + run.FailedStep)
				return errRunFailed
			}
			cmd.PrintErrln(constvars.WorkflowRunPassedMessage)
			return nil
		},
	}
	environmentFlag(cmd, &input.Environment)
	cmd.Flags().BoolVar(&input.SkipVerification, "skip-verification", false, "skip the listing checks after each create")
	cmd.Flags().StringVar(&input.Tag, "tag", "", "suffix for the generated provider email")
	return cmd
}

func loginCmd(setup setupFunc) *cobra.Command {
	var environment string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify the configured credentials for an environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			usecase, closeDrivers, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDrivers()

			verified, err := usecase.VerifyLogin(cmd.Context(), environment)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (environment %s, tenant %s)\n", constvars.LoginVerifiedMessage, verified.Environment, verified.TenantID)
			return nil
		},
	}
	environmentFlag(cmd, &environment)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nTag: %s\n", Version, Tag)
		},
	}
}
