package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/startickets/webtier/internal/config"
	"github.com/startickets/webtier/internal/email"
	"github.com/startickets/webtier/internal/logger"
	"github.com/startickets/webtier/internal/model"
)

var (
	flagEmail     string
	flagFirstName string
	flagLastName  string
	flagRole      string
	flagResetURL  string
	flagStrict    bool
	flagTimeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "notify",
	Short:        "Send StarTickets account notifications from the shell",
	SilenceUsage: true,
}

var welcomeCmd = &cobra.Command{
	Use:   "welcome",
	Short: "Send the welcome email",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, d *email.Dispatcher, u *model.User) email.Result {
			return d.SendWelcome(ctx, u)
		})
	},
}

var resetRequestCmd = &cobra.Command{
	Use:   "reset-request",
	Short: "Send the password reset link",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(flagResetURL) == "" {
			return errors.New("--url is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, d *email.Dispatcher, u *model.User) email.Result {
			return d.SendResetRequest(ctx, u, flagResetURL)
		})
	},
}

var resetConfirmationCmd = &cobra.Command{
	Use:   "reset-confirmation",
	Short: "Send the password changed notice",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, d *email.Dispatcher, u *model.User) email.Result {
			return d.SendResetConfirmation(ctx, u)
		})
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagEmail, "email", "", "recipient address")
	pf.StringVar(&flagFirstName, "first-name", "", "recipient first name")
	pf.StringVar(&flagLastName, "last-name", "", "recipient last name")
	pf.BoolVar(&flagStrict, "strict", false, "exit non-zero when delivery fails")
	pf.DurationVar(&flagTimeout, "timeout", 30*time.Second, "deadline for connecting to the mail provider and completing the send")
	rootCmd.MarkPersistentFlagRequired("email")

	welcomeCmd.Flags().StringVar(&flagRole, "role", "customer", "account role: organizer, customer or generic")
	resetRequestCmd.Flags().StringVar(&flagResetURL, "url", "", "password reset link")

	rootCmd.AddCommand(welcomeCmd)
	rootCmd.AddCommand(resetRequestCmd)
	rootCmd.AddCommand(resetConfirmationCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseRole(s string) (model.Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "organizer":
		return model.RoleOrganizer, nil
	case "customer", "":
		return model.RoleCustomer, nil
	case "generic", "user":
		return model.RoleGeneric, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

type sendFunc func(ctx context.Context, d *email.Dispatcher, u *model.User) email.Result

func run(ctx context.Context, send sendFunc) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	role, err := parseRole(flagRole)
	if err != nil {
		return err
	}
	user := &model.User{
		FirstName: flagFirstName,
		LastName:  flagLastName,
		Email:     flagEmail,
		Role:      role,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, flagTimeout)
	defer cancel()

	sender, err := email.NewSender(ctx, cfg.Email, log)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}
	d := email.NewDispatcher(sender, email.NewComposer(), cfg.Email.Provider, log)

	res := send(ctx, d, user)
	if !res.Failed() {
		fmt.Printf("%s sent to %s\n", res.Kind, res.Recipient)
		return nil
	}
	fmt.Fprintf(os.Stderr, "%s to %s not delivered: %v\n", res.Kind, res.Recipient, res.Err)
	if flagStrict {
		return res.Err
	}
	return nil
}
