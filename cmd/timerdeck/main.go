package main

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/timerdeck/core"
	"github.com/jask/timerdeck/internal/config"
	"github.com/jask/timerdeck/internal/logging"
	"github.com/jask/timerdeck/screens"
	"github.com/jask/timerdeck/tabs"
	"github.com/jask/timerdeck/timers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Debug, cfg.Logging.Dir)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	keys := core.NewKeyRegistry(core.DefaultKeyBindings(), cfg.Keys.Actions)

	cluster := timers.NewCluster(
		time.Duration(cfg.Timers.TickIntervalMS)*time.Millisecond,
		cfg.Timers.MaxTimers,
		logger,
	)
	tabList := []core.Tab{cluster, tabs.NewHelpTab()}

	commands := core.NewCommandRegistry(cluster.Commands())
	for _, c := range core.TabCommands(tabList) {
		commands.Register(c)
	}
	commands.Register(core.Command{
		ID:          "config-save",
		Name:        "Save Config",
		Description: "Write current settings to the config file",
		Execute: func(m *core.Model) tea.Cmd {
			if err := config.Save(cfg); err != nil {
				return core.ErrorCmd(err)
			}
			return core.StatusCmd("Config saved")
		},
	})

	m := core.NewModel(tabList, keys, commands)
	m.OpenCommandModal = func(m *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope, func(query string) []screens.CommandOption {
			results := m.CommandRegistry().Search(query, scope, m)
			opts := make([]screens.CommandOption, 0, len(results))
			for _, r := range results {
				opts = append(opts, screens.CommandOption{
					ID:       r.CommandID,
					Name:     r.Name,
					Desc:     r.Desc,
					Disabled: r.Disabled,
					Reason:   r.Reason,
				})
			}
			return opts
		})
	}

	logger.Info("starting timerdeck",
		zap.Int("tick_interval_ms", cfg.Timers.TickIntervalMS),
		zap.Int("max_timers", cfg.Timers.MaxTimers),
	)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
