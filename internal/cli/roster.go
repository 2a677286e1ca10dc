package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evarisis/actaflow/internal/roster"
)

func NewRosterCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List the people that can be selected as participants",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config
			members, err := roster.Load(cfg.Paths.Roster, cfg.Organization.Areas)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Preside: %s\n", cfg.Organization.Chair)
			fmt.Fprintf(out, "Usuario actual: %s\n", cfg.Organization.CurrentUser)
			for _, m := range roster.Selectable(members, cfg.Organization.CurrentUser, cfg.Organization.Chair) {
				fmt.Fprintf(out, "  %-40s %s\n", m.Name, m.Area)
			}
			return nil
		},
	}
}
