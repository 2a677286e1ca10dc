package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/evarisis/actaflow/internal/pipeline"
)

var errIncomplete = errors.New("processing did not complete")

func progressPrinter(w io.Writer) pipeline.Sink {
	return func(u pipeline.Update) {
		fmt.Fprintf(w, "[%s %3.0f%%] %s\n", u.Stage, u.Fraction*100, u.Message)
	}
}

func printReport(w io.Writer, r pipeline.Report) error {
	fmt.Fprintln(w)
	switch {
	case r.Success:
		fmt.Fprintln(w, "Éxito total")
	case r.Partial:
		fmt.Fprintln(w, "Éxito parcial")
	default:
		fmt.Fprintln(w, "Proceso detenido")
	}
	fmt.Fprintln(w, r.Message)
	if r.LiteralPath != "" {
		fmt.Fprintf(w, "  Acta literal: %s\n", r.LiteralPath)
	}
	if r.OfficialPath != "" {
		fmt.Fprintf(w, "  Acta oficial: %s\n", r.OfficialPath)
	}
	if !r.Success && !r.Partial {
		return errIncomplete
	}
	return nil
}
