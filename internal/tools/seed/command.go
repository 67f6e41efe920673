package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/config"
	"github.com/taskvault/taskvault-api/internal/database"
	"github.com/taskvault/taskvault-api/internal/tools/common"
)

type options struct {
	envFile string
	ci      bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Database schema and seed tooling"}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newMigrateCommand(opts), newApplyCommand(opts), newDryRunCommand(opts))
	return cmd
}

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations only",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := func() ([]string, error) {
				db, err := openDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				if err := database.Migrate(db); err != nil {
					return nil, err
				}
				return []string{"migrated users, todos, products, accounts"}, nil
			}()
			return finish(opts, "seed migrate", details, err)
		},
	}
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Migrate and load demo seed data",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := func() ([]string, error) {
				db, err := openDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				if err := database.Migrate(db); err != nil {
					return nil, err
				}
				report, err := database.Seed(db)
				if err != nil {
					return nil, err
				}
				if report.Noop {
					return []string{"seed data already present, nothing to do"}, nil
				}
				return []string{fmt.Sprintf(
					"created %d users, %d accounts, %d products",
					report.CreatedUsers, report.CreatedAccounts, report.CreatedProducts,
				)}, nil
			}()
			return finish(opts, "seed apply", details, err)
		},
	}
}

func newDryRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "Show what seeding would do",
		RunE: func(cmd *cobra.Command, args []string) error {
			details := []string{
				"would migrate tables: users, todos, products, accounts",
				"would ensure demo user: john.doe@example.com",
				"would ensure demo accounts: alice (1000), bob (500)",
				"would ensure demo products: basic tee, zip hoodie",
			}
			return finish(opts, "seed dry-run", details, nil)
		},
	}
}

func finish(opts *options, title string, details []string, err error) error {
	if opts.ci {
		common.PrintCIResult(err == nil, title, details, err)
		if err != nil {
			os.Exit(3)
		}
		return nil
	}
	if err != nil {
		return err
	}
	for _, d := range details {
		fmt.Println(d)
	}
	return nil
}

func openDB(envFile string) (*gorm.DB, error) {
	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.Open(cfg)
}
