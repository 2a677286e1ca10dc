package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "actaflow",
		Short: "Record meetings and produce their minutes",
		Long: "Records each speaker's interventions, transcribes them with a cloud speech service and\n" +
			"turns the literal transcript into the official minutes. Interrupted runs resume where they stopped.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return deps.Load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			deps.Close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", "config.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(NewRecordCmd(deps))
	rootCmd.AddCommand(NewResumeCmd(deps))
	rootCmd.AddCommand(NewSummarizeCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewRosterCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
