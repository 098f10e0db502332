package cli

import "fmt"

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists." default:"false"`
}

func (cmd *InitCmd) Run(ctx *Context) error {
	if cmd.Force {
		// Init on an existing store fails; force loads instead so the command
		// stays idempotent for provisioning scripts.
		if err := ctx.Store.Load(); err == nil {
			fmt.Printf("Storage already initialized at %s\n", ctx.Store.GetConfigPath())
			return nil
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized ritual storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
