package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faciam-dev/gcms/pkg/cms"
)

func newExportCmd() *cobra.Command {
	var (
		f     DBFlags
		out   string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export pages to YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			if _, err := os.Stat(out); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to overwrite)", out)
			}
			db, store, err := f.Open()
			if err != nil {
				return err
			}
			defer db.Close()
			reg, err := f.Registry()
			if err != nil {
				return err
			}
			svc := cms.New(cms.ServiceConfig{Store: store, Registry: reg})
			data, err := svc.Export(cmd.Context(), f.Table)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported pages to %s\n", out)
			return nil
		},
	}
	f.AddFlags(cmd)
	cmd.Flags().StringVar(&out, "out", "pages.yaml", "output file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite without confirmation")
	return cmd
}
