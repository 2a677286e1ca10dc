package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evarisis/actaflow/internal/project"
)

func NewResumeCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "resume <meeting>",
		Short: "Resume transcription of a saved meeting",
		Long:  "Continues a meeting whose transcription was interrupted. <meeting> is a folder path or a folder name under the meetings directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := resolveMeeting(deps, args[0])
			if !project.Exists(dir) {
				return fmt.Errorf("no saved project in %s", dir)
			}

			p, err := deps.Pipeline(cmd.Context())
			if err != nil {
				return err
			}
			report := p.Process(cmd.Context(), dir, nil, progressPrinter(cmd.OutOrStdout()))
			return printReport(cmd.OutOrStdout(), report)
		},
	}
}

func resolveMeeting(deps *Dependencies, arg string) string {
	if project.Exists(arg) {
		return filepath.Clean(arg)
	}
	return filepath.Join(deps.Config.Paths.Meetings, arg)
}
