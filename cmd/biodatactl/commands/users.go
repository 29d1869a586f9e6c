package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"biodata-api/config"
	"biodata-api/internal/database"
	"biodata-api/internal/models"
	"biodata-api/internal/services"
	"biodata-api/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := openPool()
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(cmd.Context(), pool); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
		return nil
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an account with the admin role",
	Long: `Create an account with the admin role.

Examples:
  biodatactl create-admin --email hr@example.com --password s3cret!
  biodatactl create-admin --email hr@example.com    # prints a generated password`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openAuthService(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()
		return runCreateAdmin(cmd.Context(), cmd.OutOrStdout(), svc, adminEmail, adminPassword)
	},
}

var promoteCmd = &cobra.Command{
	Use:   "promote EMAIL",
	Short: "Grant the admin role to an existing account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRole(cmd, args[0], models.RoleAdmin)
	},
}

var demoteCmd = &cobra.Command{
	Use:   "demote EMAIL",
	Short: "Return an account to the user role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRole(cmd, args[0], models.RoleUser)
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Email of the new admin")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password of the new admin (generated when empty)")
	_ = createAdminCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(migrateCmd, createAdminCmd, promoteCmd, demoteCmd)
}

func openPool() (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return database.NewConnectionPool(cfg.DB)
}

// openAuthService connects to the database without Redis. Role changes only
// touch the users table, so revocation is not needed here.
func openAuthService(ctx context.Context) (services.AuthService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	pool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	svc := services.NewAuthService(postgres.NewUserRepo(pool), nil, cfg.JWT.Secret, cfg.JWT.Expiration)
	return svc, pool.Close, nil
}

func setRole(cmd *cobra.Command, email string, role models.Role) error {
	svc, closeFn, err := openAuthService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()
	return runSetRole(cmd.Context(), cmd.OutOrStdout(), svc, email, role)
}

func runCreateAdmin(ctx context.Context, out io.Writer, svc services.AuthService, email, password string) error {
	generated := password == ""
	if generated {
		var err error
		if password, err = randomPassword(); err != nil {
			return err
		}
	}

	user, err := svc.CreateUser(ctx, email, password, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("create admin %s: %w", email, err)
	}

	fmt.Fprintf(out, "Admin created: id=%d email=%s\n", user.ID, user.Email)
	if generated {
		fmt.Fprintf(out, "Generated password: %s\n", password)
	}
	return nil
}

func runSetRole(ctx context.Context, out io.Writer, svc services.AuthService, email string, role models.Role) error {
	user, err := svc.SetRole(ctx, email, role)
	if err != nil {
		return fmt.Errorf("set role of %s: %w", email, err)
	}
	fmt.Fprintf(out, "%s is now %s. Existing tokens keep the old role until they expire.\n", user.Email, user.Role)
	return nil
}

func randomPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
