package main

import (
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/hemttools/hemttctl/internal/store"
)

// newConfigCommand edits the persisted settings document: the path
// fields and preference toggles the other subcommands read.
func newConfigCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit saved settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println(c.settingsPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "get",
			Short: "Print all saved settings as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := sonic.ConfigDefault.MarshalIndent(c.mgr.Settings(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set one saved setting",
			Long: `Set one saved setting. Keys: hemtt_path, project_dir,
arma3_executable, dark_mode, verbose, pedantic.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.setSetting(args[0], args[1])
			},
		},
	)
	return cmd
}

func (c *cli) setSetting(key, value string) error {
	stringKeys := map[string]func(*store.Settings, string){
		"hemtt_path":       func(s *store.Settings, v string) { s.HemttPath = v },
		"project_dir":      func(s *store.Settings, v string) { s.ProjectDir = v },
		"arma3_executable": func(s *store.Settings, v string) { s.Arma3Executable = v },
	}
	boolKeys := map[string]func(*store.Settings, bool){
		"dark_mode": func(s *store.Settings, v bool) { s.DarkMode = v },
		"verbose":   func(s *store.Settings, v bool) { s.Verbose = v },
		"pedantic":  func(s *store.Settings, v bool) { s.Pedantic = v },
	}

	if set, ok := stringKeys[key]; ok {
		c.mgr.UpdateSettings(func(s *store.Settings) { set(s, value) })
		return nil
	}
	if set, ok := boolKeys[key]; ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		c.mgr.UpdateSettings(func(s *store.Settings) { set(s, b) })
		return nil
	}
	return fmt.Errorf("unknown setting: %s", key)
}
