package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/faciam-dev/gcms/internal/auth"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "user", Short: "Manage users"}
	cmd.AddCommand(newUserCreateCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var f DBFlags
	var username, password, email, name, groups string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}
			db, _, err := f.Open()
			if err != nil {
				return err
			}
			defer db.Close()
			repo := &auth.UserRepo{DB: db, TablePrefix: f.Prefix}
			if err := repo.Migrate(cmd.Context()); err != nil {
				return err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
			if err != nil {
				return err
			}
			var gs []string
			for _, g := range strings.Split(groups, ",") {
				if g = strings.TrimSpace(g); g != "" {
					gs = append(gs, g)
				}
			}
			u := auth.User{
				Sub:          uuid.NewString(),
				Username:     username,
				PasswordHash: string(hash),
				Email:        email,
				Name:         name,
				Groups:       gs,
			}
			if err := repo.Create(cmd.Context(), u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", username, u.Sub)
			return nil
		},
	}
	f.AddFlags(cmd)
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&groups, "groups", "", "comma separated groups (table ids, editor, admin, visitor)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}
