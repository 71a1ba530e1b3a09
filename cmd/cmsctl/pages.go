package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newPagesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "pages", Short: "Manage pages"}
	cmd.AddCommand(newPagesListCmd())
	cmd.AddCommand(newPagesDeleteCmd())
	return cmd
}

func newPagesListCmd() *cobra.Command {
	var f DBFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pages of an application table",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, store, err := f.Open()
			if err != nil {
				return err
			}
			defer db.Close()
			pages, err := store.List(cmd.Context(), f.Table)
			if err != nil {
				return err
			}
			format, _ := cmd.Root().Flags().GetString("output")
			if format == "json" {
				b, err := json.MarshalIndent(pages, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			tw := tablewriter.NewWriter(os.Stdout)
			tw.SetHeader([]string{"Page", "Title", "Sections", "Updated"})
			for _, p := range pages {
				tw.Append([]string{p.Page, p.Title, strconv.Itoa(len(p.Sections)), p.UpdatedAt.Format("2006-01-02 15:04")})
			}
			tw.Render()
			return nil
		},
	}
	f.AddFlags(cmd)
	return cmd
}

func newPagesDeleteCmd() *cobra.Command {
	var f DBFlags
	cmd := &cobra.Command{
		Use:   "delete <page>",
		Short: "Delete a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, store, err := f.Open()
			if err != nil {
				return err
			}
			defer db.Close()
			if err := store.Delete(cmd.Context(), f.Table, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s/%s\n", f.Table, args[0])
			return nil
		},
	}
	f.AddFlags(cmd)
	return cmd
}
