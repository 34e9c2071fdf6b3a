package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"ebisu/internal/config"
)

// newActionCmd posts a layout action to a running workspace's bridge.
// Useful for scripting and for exercising the action surface without an
// agent:
//
//	ebisu action '{"action":"addPanel","panelId":"people","position":"right"}'
func newActionCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "action <json>",
		Short: "Send a layout action to a running workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				cfg, err := config.Load(*configPath)
				if err != nil {
					return err
				}
				addr = cfg.Bridge.Addr
			}

			payload := []byte(args[0])
			if !json.Valid(payload) {
				return fmt.Errorf("argument is not valid JSON")
			}

			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Post("http://"+addr+"/actions", "application/json", bytes.NewReader(payload))
			if err != nil {
				return fmt.Errorf("post action: %w", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("read response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bytes.TrimSpace(body)))
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("action rejected (HTTP %d)", resp.StatusCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "bridge address (default from config)")
	return cmd
}
