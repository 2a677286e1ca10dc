package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomutex/godocx"
)

const separator = "--------------------------------------------------"

// Literal is the verbatim transcript of a meeting.
type Literal struct {
	Title        string
	Date         time.Time
	Participants []string
	Entries      []Entry
}

// Entry is one dialogue line, already rendered to text.
type Entry struct {
	ID      int
	Speaker string
	Text    string
}

// EntryLabel is the bold prefix written before each dialogue.
func EntryLabel(id int, speaker string) string {
	return fmt.Sprintf("Diálogo %d - %s: ", id, speaker)
}

// WriteLiteral writes the literal minutes: heading block, separator, then one
// paragraph per entry in the given order.
func WriteLiteral(path string, lit Literal) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), lit.Title, true, headingSize(1))
	addStyledRun(doc.AddParagraph(""), "Acta de Reunión", true, headingSize(2))
	addPlainRun(doc.AddParagraph(""), "Fecha: "+lit.Date.Format("02-01-2006"))
	addPlainRun(doc.AddParagraph(""), "Participantes: "+strings.Join(lit.Participants, ", "))
	addPlainRun(doc.AddParagraph(""), separator)

	for _, e := range lit.Entries {
		p := doc.AddParagraph("")
		p.AddText(EntryLabel(e.ID, e.Speaker)).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		addPlainRun(p, e.Text)
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save literal document: %w", err)
	}
	return nil
}
