package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/evarisis/actaflow/internal/project"
	"github.com/evarisis/actaflow/internal/roster"
	"github.com/evarisis/actaflow/internal/session"
)

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	var title string
	var with []string
	var persistOnly bool

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a meeting, speaker by speaker",
		Long: "Starts an interactive recording console. Type a participant number to start or stop\n" +
			"their intervention; q ends the meeting and runs transcription and summarization.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := deps.Config
			out := cmd.OutOrStdout()
			sc := bufio.NewScanner(cmd.InOrStdin())

			if title == "" {
				title = session.DefaultTitle(time.Now())
			}
			dir := filepath.Join(cfg.Paths.Meetings, session.FolderName(title))
			if project.Exists(dir) {
				return fmt.Errorf("meeting %q already exists; use 'actaflow resume %s'", title, filepath.Base(dir))
			}

			selected := with
			if len(selected) == 0 {
				picked, err := pickParticipants(sc, out, deps)
				if err != nil {
					return err
				}
				selected = picked
			}
			participants := session.Participants(selected, cfg.Organization.CurrentUser, cfg.Organization.Chair)
			sess := session.New(title, participants)

			if deps.NewCapturer == nil {
				return errNoCapture
			}
			capturer := deps.NewCapturer(cfg.Audio.SampleRate, cfg.Audio.FramesPerBuffer, deps.Logger)
			rec := session.NewRecorder(capturer, sess.Queue, deps.Logger)

			fmt.Fprintf(out, "Reunión: %s\n", title)
			if err := runConsole(ctx, sc, out, rec, participants); err != nil {
				if ctx.Err() != nil && sess.Queue.Len() > 0 {
					// interrupted: keep what was recorded so it can be resumed
					if path, perr := project.Persist(dir, sess.Title, sess.Participants, sess.Queue.Snapshot(), cfg.Audio.SampleRate); perr == nil {
						fmt.Fprintf(out, "Grabación interrumpida. Proyecto guardado: %s\n", path)
						fmt.Fprintf(out, "Continúe con 'actaflow resume %s'\n", filepath.Base(dir))
					}
				}
				return err
			}
			fmt.Fprintf(out, "%d diálogos grabados.\n", sess.Queue.Len())

			if persistOnly {
				path, err := project.Persist(dir, sess.Title, sess.Participants, sess.Queue.Snapshot(), cfg.Audio.SampleRate)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Proyecto guardado: %s\n", path)
				return nil
			}

			p, err := deps.Pipeline(ctx)
			if err != nil {
				// keep the recording even when the cloud clients cannot be built
				if path, perr := project.Persist(dir, sess.Title, sess.Participants, sess.Queue.Snapshot(), cfg.Audio.SampleRate); perr == nil {
					fmt.Fprintf(out, "Proyecto guardado para reintentar: %s\n", path)
				}
				return err
			}
			report := p.Process(ctx, dir, sess, progressPrinter(out))
			return printReport(out, report)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Meeting title (default: dated management meeting)")
	cmd.Flags().StringSliceVarP(&with, "with", "w", nil, "Participants to add, skipping the roster prompt")
	cmd.Flags().BoolVar(&persistOnly, "persist-only", false, "Save audio and manifest without transcribing")

	return cmd
}

var errNoCapture = errors.New("this build has no audio capture support")

func pickParticipants(sc *bufio.Scanner, out io.Writer, deps *Dependencies) ([]string, error) {
	cfg := deps.Config
	members, err := roster.Load(cfg.Paths.Roster, cfg.Organization.Areas)
	if err != nil {
		return nil, err
	}
	members = roster.Selectable(members, cfg.Organization.CurrentUser, cfg.Organization.Chair)
	if len(members) == 0 {
		return nil, nil
	}

	for i, m := range members {
		fmt.Fprintf(out, "  %2d. %s (%s)\n", i+1, m.Name, m.Area)
	}
	fmt.Fprint(out, "Seleccione participantes (ej. 1,3,4): ")
	if !sc.Scan() {
		return nil, sc.Err()
	}

	idx, err := parseSelection(sc.Text(), len(members))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(idx))
	for _, i := range idx {
		names = append(names, members[i].Name)
	}
	return names, nil
}
