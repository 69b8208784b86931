package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docweaver/internal/site"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Strict bool `help:"Treat duplicate section or title languages as errors"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	builder := site.NewBuilder(root.Project, "",
		site.WithStrict(c.Strict),
		site.WithLogger(g.logger()),
	)
	report, err := builder.Check(g.ctx())
	if err != nil {
		return err
	}
	fmt.Printf("OK: %d pages in %d categories, %d components\n", report.Pages, report.Categories, report.Components)
	return nil
}
