package core

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "timers", Scopes: []string{"*"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "help", Scopes: []string{"*"}},
		{Keys: []string{"a"}, Action: "timer-add", Description: "add timer", Scopes: []string{"tab:timers"}},
		{Keys: []string{"d"}, Action: "timer-delete", Description: "delete timer", Scopes: []string{"tab:timers"}},
		{Keys: []string{" ", "enter"}, Action: "timer-toggle", Description: "start/stop", Scopes: []string{"tab:timers"}},
		{Keys: []string{"r"}, Action: "timer-reset", Description: "reset", Scopes: []string{"tab:timers"}},
		{Keys: []string{"e"}, Action: "timer-rename", Description: "rename", Scopes: []string{"tab:timers"}},
		{Keys: []string{"s"}, Action: "timer-start-all", Description: "start all", Scopes: []string{"tab:timers"}},
		{Keys: []string{"x"}, Action: "timer-stop-all", Description: "stop all", Scopes: []string{"tab:timers"}},
		{Keys: []string{"h", "left"}, Action: "select-prev", Description: "prev", Scopes: []string{"tab:timers"}},
		{Keys: []string{"l", "right"}, Action: "select-next", Description: "next", Scopes: []string{"tab:timers"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:picker", "screen:command"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:picker", "screen:command"}},
		{Keys: []string{"esc"}, Action: "close", Description: "cancel", Scopes: []string{"editor:rename"}},
		{Keys: []string{"enter"}, Action: "select", Description: "apply", Scopes: []string{"editor:rename"}},
	}
}
