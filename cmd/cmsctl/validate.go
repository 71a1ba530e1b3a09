package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/faciam-dev/gcms/pkg/content"
)

func newValidateCmd() *cobra.Command {
	var (
		f    DBFlags
		file string
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a pages YAML document against the section schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var doc struct {
				Pages []content.Page `yaml:"pages"`
			}
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return err
			}
			reg, err := f.Registry()
			if err != nil {
				return err
			}
			lc := content.Lifecycle{Registry: reg}
			ok := true
			for _, p := range doc.Pages {
				res := lc.Validate(&p)
				if res.Valid {
					continue
				}
				ok = false
				for _, e := range res.Errors {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.Page, e)
				}
			}
			if !ok {
				return fmt.Errorf("validation failed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d pages OK\n", len(doc.Pages))
			return nil
		},
	}
	f.AddFlags(cmd)
	cmd.Flags().StringVar(&file, "file", "", "pages YAML file")
	cmd.MarkFlagRequired("file")
	return cmd
}
