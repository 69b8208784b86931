package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docweaver/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing config.yml"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	// Friendly user-facing messages on stdout.
	fmt.Printf("Initializing docweaver project in %s\n", root.Project)
	if err := config.Init(root.Project, i.Force); err != nil {
		fmt.Println("Initialization failed")
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
