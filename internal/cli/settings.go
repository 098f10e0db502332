package cli

import (
	"fmt"

	"github.com/julianstephens/ritual/internal/clock"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update a setting."`
}

type SettingsShowCmd struct{}

func (cmd *SettingsShowCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("timezone: %s\n", settings.Timezone)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key (timezone)." enum:"timezone"`
	Value string `arg:"" help:"New value."`
}

func (cmd *SettingsSetCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch cmd.Key {
	case "timezone":
		if _, err := clock.NewSystem(cmd.Value); err != nil {
			return err
		}
		settings.Timezone = cmd.Value
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", cmd.Key, cmd.Value)
	return nil
}
