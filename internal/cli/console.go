package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/evarisis/actaflow/internal/session"
)

type action int

const (
	actToggle action = iota
	actGuest
	actRename
	actStop
	actQuit
	actHelp
	actStatus
)

type command struct {
	action action
	index  int
	name   string
}

// parseCommand reads one console line:
//
//	<n>        toggle speaker n
//	g [name]   start a guest
//	n <name>   rename the active guest
//	s          stop the current speaker
//	q          end the meeting
func parseCommand(line string, speakers int) (command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return command{action: actStatus}, nil
	}
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "g":
		return command{action: actGuest, name: rest}, nil
	case "n":
		if rest == "" {
			return command{}, fmt.Errorf("usage: n <name>")
		}
		return command{action: actRename, name: rest}, nil
	case "s":
		return command{action: actStop}, nil
	case "q":
		return command{action: actQuit}, nil
	case "?", "h", "help":
		return command{action: actHelp}, nil
	}

	n, err := strconv.Atoi(verb)
	if err != nil || n < 1 || n > speakers {
		return command{}, fmt.Errorf("unknown command %q", line)
	}
	return command{action: actToggle, index: n - 1}, nil
}

func printSpeakers(w io.Writer, speakers []string) {
	fmt.Fprintln(w, "Participantes:")
	for i, s := range speakers {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, s)
	}
	fmt.Fprintln(w, "Comandos: <n> hablar/parar, g [nombre] invitado, n <nombre> renombrar invitado, s parar, q terminar")
}

// runConsole drives the recorder from line commands until q, EOF or ctx is
// cancelled. The active speaker is always flushed before returning.
func runConsole(ctx context.Context, sc *bufio.Scanner, w io.Writer, rec *session.Recorder, speakers []string) error {
	printSpeakers(w, speakers)
	lines, scanErr := scanLines(ctx, sc)

	for {
		fmt.Fprint(w, "> ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
		case line, ok = <-lines:
		}
		if ctx.Err() != nil {
			fmt.Fprintln(w)
			if err := rec.Stop(); err != nil {
				return errors.Join(ctx.Err(), err)
			}
			return ctx.Err()
		}
		if !ok {
			if err := <-scanErr; err != nil {
				rec.Stop()
				return err
			}
			return rec.Stop()
		}

		cmd, err := parseCommand(line, len(speakers))
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}

		switch cmd.action {
		case actToggle:
			err = toggle(w, rec, speakers[cmd.index])
		case actGuest:
			err = toggle(w, rec, session.GuestSpeaker(cmd.name))
		case actRename:
			err = rec.Rename(session.GuestSpeaker(cmd.name))
		case actStop:
			err = rec.Stop()
		case actQuit:
			return rec.Stop()
		case actHelp:
			printSpeakers(w, speakers)
		case actStatus:
			st, sp := rec.State()
			fmt.Fprintf(w, "%s %s\n", st, sp)
		}
		if err != nil {
			fmt.Fprintln(w, "error:", err)
		}
	}
}

// scanLines reads sc on its own goroutine so a blocked read never holds up
// cancellation. scanErr receives exactly one value before lines is closed.
func scanLines(ctx context.Context, sc *bufio.Scanner) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- sc.Err()
	}()
	return lines, scanErr
}

func toggle(w io.Writer, rec *session.Recorder, speaker string) error {
	st, err := rec.Toggle(speaker)
	if err != nil {
		return err
	}
	if st == session.Recording {
		_, sp := rec.State()
		fmt.Fprintf(w, "● grabando: %s\n", sp)
	} else {
		fmt.Fprintln(w, "■ detenido")
	}
	return nil
}

// parseSelection turns "1, 3 4" into zero-based indexes within [0,n).
func parseSelection(line string, n int) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' })
	var out []int
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil || i < 1 || i > n {
			return nil, fmt.Errorf("invalid selection %q", f)
		}
		out = append(out, i-1)
	}
	return out, nil
}
