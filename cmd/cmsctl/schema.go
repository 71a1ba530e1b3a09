package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "schema", Short: "Inspect section schemas"}
	cmd.AddCommand(newSchemaListCmd())
	cmd.AddCommand(newSchemaShowCmd())
	return cmd
}

func newSchemaListCmd() *cobra.Command {
	var f DBFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered section types",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := f.Registry()
			if err != nil {
				return err
			}
			format, _ := cmd.Root().Flags().GetString("output")
			if format == "json" {
				b, err := json.MarshalIndent(reg.Types(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			tw := tablewriter.NewWriter(os.Stdout)
			tw.SetHeader([]string{"Type", "Name", "Fields"})
			for _, key := range reg.Types() {
				s, _ := reg.Get(key)
				tw.Append([]string{key, s.Name, fmt.Sprint(len(s.Fields))})
			}
			tw.Render()
			return nil
		},
	}
	f.AddFlags(cmd)
	return cmd
}

func newSchemaShowCmd() *cobra.Command {
	var f DBFlags
	cmd := &cobra.Command{
		Use:   "show <type>",
		Short: "Print one section schema as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := f.Registry()
			if err != nil {
				return err
			}
			s, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown section type %q", args[0])
			}
			b, err := yaml.Marshal(s)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	f.AddFlags(cmd)
	return cmd
}
