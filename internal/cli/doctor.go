package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config
			out := cmd.OutOrStdout()
			ok := true

			if cfg.Summarizer.Converter == "pandoc" {
				if _, err := deps.Executor.LookPath("pandoc"); err != nil {
					check(out, "pandoc", false, "not found. Install pandoc or set summarizer.converter: native")
					ok = false
				} else {
					check(out, "pandoc", true, "installed")
				}
			} else {
				check(out, "converter", true, "native")
			}

			if len(cfg.Gemini.APIKeys) > 0 {
				check(out, "Gemini API keys", true, fmt.Sprintf("%d configured", len(cfg.Gemini.APIKeys)))
			} else {
				check(out, "Gemini API keys", false, "not set. Set ACTAFLOW_GEMINI_API_KEYS or gemini.api_keys")
				ok = false
			}

			if cfg.Transcription.Backend == "openai" {
				if cfg.OpenAI.APIKey != "" {
					check(out, "OpenAI API key", true, "configured")
				} else {
					check(out, "OpenAI API key", false, "not set. Set ACTAFLOW_OPENAI_API_KEY or openai.api_key")
					ok = false
				}
			}

			if deps.Prober().Probe(cmd.Context()) {
				check(out, "Connectivity", true, cfg.Connectivity.Address+" reachable")
			} else {
				check(out, "Connectivity", false, cfg.Connectivity.Address+" unreachable; recordings can still be saved")
			}

			if _, err := os.Stat(cfg.Paths.Roster); err == nil {
				check(out, "Roster directory", true, cfg.Paths.Roster)
			} else {
				check(out, "Roster directory", false, cfg.Paths.Roster+" missing; participants must be passed with --with")
			}
			check(out, "Meetings directory", true, cfg.Paths.Meetings)

			if ok {
				fmt.Fprintln(out, "\nAll prerequisites met. Ready to record!")
			} else {
				fmt.Fprintln(out, "\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

func check(w io.Writer, name string, ok bool, detail string) {
	mark := "✓"
	if !ok {
		mark = "✗"
	}
	fmt.Fprintf(w, "%s %s: %s\n", mark, name, detail)
}
