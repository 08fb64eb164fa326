package main

import (
	"errors"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
	"github.com/bgrbarbosa/product-catalog/internal/core/service"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/auth"
	"github.com/bgrbarbosa/product-catalog/internal/infrastructure/db/relational"
	"github.com/bgrbarbosa/product-catalog/pkg/logger"
)

const (
	emailFlag     = "email"
	passwordFlag  = "password"
	firstNameFlag = "first-name"
	lastNameFlag  = "last-name"
)

var createAdminFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Usage: "Login email of the administrator (required)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Usage: "Initial password, at least 6 characters (required)",
	},
	firstNameFlag: &cobraflags.StringFlag{
		Name:  firstNameFlag,
		Value: "Admin",
		Usage: "First name",
	},
	lastNameFlag: &cobraflags.StringFlag{
		Name:  lastNameFlag,
		Value: "Catalog",
		Usage: "Last name",
	},
}

func newUserCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	createAdmin := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a user holding ROLE_ADMIN and ROLE_USER",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := adminInput(
				createAdminFlags[emailFlag].GetString(),
				createAdminFlags[passwordFlag].GetString(),
				createAdminFlags[firstNameFlag].GetString(),
				createAdminFlags[lastNameFlag].GetString(),
			)
			if err != nil {
				return err
			}

			db, err := a.openDB(cmd.Context(), a.cfg.DB.AutoMigrate)
			if err != nil {
				return err
			}
			defer relational.Close(db)

			users := service.NewUserService(
				relational.NewUserRepository(db),
				relational.NewRoleRepository(db),
				auth.NewBcryptHasher(a.cfg.Auth.BcryptCost),
				nil,
				nil,
				logger.Component("user"),
			)
			u, err := users.Insert(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}
	cobraflags.RegisterMap(createAdmin, createAdminFlags)

	cmd.AddCommand(createAdmin)
	return cmd
}

func adminInput(email, password, firstName, lastName string) (ports.UserInput, error) {
	if email == "" {
		return ports.UserInput{}, errors.New("--email is required")
	}
	if len(password) < 6 {
		return ports.UserInput{}, errors.New("--password must have at least 6 characters")
	}
	return ports.UserInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Roles:     []string{domain.RoleAdmin, domain.RoleUser},
	}, nil
}
