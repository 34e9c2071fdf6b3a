package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ebisu/internal/agent"
	"ebisu/internal/apollo"
	"ebisu/internal/bridge"
	"ebisu/internal/config"
	"ebisu/internal/layout"
	"ebisu/internal/logging"
	"ebisu/internal/telemetry"
	"ebisu/internal/ui"
)

// replyTimeout bounds how long a bridge request waits for the event loop.
const replyTimeout = 5 * time.Second

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ebisu",
		Short: "Agent-driven prospecting workspace in the terminal",
		Long: `ebisu is a tiling terminal workspace for sales prospecting.
An AI agent searches Apollo for people and companies and arranges the
result panels for you; every panel is also under your keyboard control
(ctrl+b for keybinds).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(configPath)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/ebisu/config.yaml)")
	cmd.AddCommand(newActionCmd(&configPath))
	return cmd
}

func runTUI(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		shutdownTracing(ctx) //nolint:errcheck
	}()

	controller := layout.New(ui.DefaultArrangement(), layout.WithDefaultPanel(cfg.DefaultPanelID()))
	app := ui.NewAppModel(controller, ui.DefaultRegistry(), newRunner(cfg, log), log)
	p := tea.NewProgram(ui.NewProgramModel(app), tea.WithAltScreen())

	server := bridge.NewServer(cfg.Bridge.Addr, forwarderFor(p), log)
	if err := server.Start(); err != nil {
		return fmt.Errorf("start bridge: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		server.Stop(ctx) //nolint:errcheck
	}()
	log.Info("bridge listening", zap.String("addr", server.Addr()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// newRunner picks the agent backend: an external agent process when
// configured, the direct Apollo search runner when an API key is present,
// and a canned stub otherwise.
func newRunner(cfg config.Config, log *zap.Logger) agent.Runner {
	if len(cfg.Agent.Command) > 0 {
		log.Info("using agent process", zap.Strings("command", cfg.Agent.Command))
		return agent.NewProcessRunner(cfg.Agent.Command)
	}
	if cfg.Apollo.APIKey != "" {
		return agent.NewSearchRunner(apollo.NewClient(cfg.Apollo.Endpoint, cfg.Apollo.APIKey))
	}
	log.Warn("no agent command or Apollo API key configured, using stub runner")
	return agent.NewStubRunner(nil)
}

// forwarderFor hands bridge commands to the event loop and waits for the
// reply so the HTTP response carries the actual outcome.
func forwarderFor(p *tea.Program) bridge.Forwarder {
	return func(cmd bridge.Command) bridge.Result {
		reply := make(chan bridge.Result, 1)
		p.Send(ui.ActionMsg{Command: cmd, Reply: reply})
		select {
		case res := <-reply:
			return res
		case <-time.After(replyTimeout):
			return bridge.Result{Success: false, Message: "workspace did not respond in time"}
		}
	}
}
