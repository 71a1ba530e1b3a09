package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// cliConfig is persisted to ~/.cmsctl/config.json after a successful login.
type cliConfig struct {
	APIURL string `json:"api_url"`
	Token  string `json:"token"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cmsctl", "config.json"), nil
}

func newLoginCmd() *cobra.Command {
	var apiURL, username, password, table string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a token and save it into ~/.cmsctl/config.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" || username == "" || password == "" {
				return fmt.Errorf("--api-url, --username and --password are required")
			}
			body, err := json.Marshal(map[string]string{"username": username, "password": password})
			if err != nil {
				return err
			}
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, apiURL+"/v1/auth/login", bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Table-ID", table)
			cli := &http.Client{Timeout: 10 * time.Second}
			resp, err := cli.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("login failed: %s", resp.Status)
			}
			var out struct {
				AccessToken string `json:"access_token"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				return err
			}
			p, err := configPath()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
				return err
			}
			data, err := json.MarshalIndent(cliConfig{APIURL: apiURL, Token: out.AccessToken}, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(p, data, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in, token saved to %s\n", p)
			return nil
		},
	}
	cmd.Flags().StringVar(&apiURL, "api-url", "", "API base URL")
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().StringVar(&table, "table", "default", "application table id")
	cmd.MarkFlagRequired("api-url")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}
