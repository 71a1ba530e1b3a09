package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faciam-dev/gcms/pkg/cms"
)

func newApplyCmd() *cobra.Command {
	var (
		f      DBFlags
		file   string
		dryRun bool
		actor  string
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a YAML page document to the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			db, store, err := f.Open()
			if err != nil {
				return err
			}
			defer db.Close()
			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			reg, err := f.Registry()
			if err != nil {
				return err
			}
			svc := cms.New(cms.ServiceConfig{Store: store, Registry: reg})
			rep, err := svc.Apply(cmd.Context(), f.Table, data, cms.ApplyOptions{DryRun: dryRun, Actor: actor})
			if err != nil {
				return err
			}
			label := "applied"
			if dryRun {
				label = "planned"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d added, %d updated, %d deleted\n", label, rep.Added, rep.Updated, rep.Deleted)
			return nil
		},
	}
	f.AddFlags(cmd)
	cmd.Flags().StringVar(&file, "file", "", "pages YAML file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute the diff without writing")
	cmd.Flags().StringVar(&actor, "actor", "", "actor recorded in logs")
	cmd.MarkFlagRequired("file")
	return cmd
}
