package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/evarisis/actaflow/internal/project"
	"github.com/evarisis/actaflow/internal/summarizer"
)

func NewSummarizeCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <literal.docx>",
		Short: "Regenerate the official minutes from a literal transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			literal := args[0]
			meeting := summarizer.Meeting{
				Title: strings.TrimSuffix(filepath.Base(literal), filepath.Ext(literal)),
				Date:  time.Now(),
			}
			if m, err := project.Load(project.ManifestPath(filepath.Dir(literal))); err == nil {
				meeting.Title = m.Title
				meeting.Participants = m.Participants
			}

			sum, err := deps.Summarizer(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res := sum.Run(cmd.Context(), literal, meeting, func(f float64, msg string) {
				fmt.Fprintf(out, "[%3.0f%%] %s\n", f*100, msg)
			})
			fmt.Fprintln(out, res.Message)
			if !res.Success {
				return errIncomplete
			}
			return nil
		},
	}
}
