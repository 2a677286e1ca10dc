package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/evarisis/actaflow/internal/logger"
	"github.com/evarisis/actaflow/pkg/executor"
)

type fakeExecutor struct {
	missing bool
	dir     string
	args    []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.dir = dir
	f.args = args
	md, err := os.ReadFile(filepath.Join(dir, args[0]))
	if err != nil {
		return "", err
	}
	return "", os.WriteFile(args[len(args)-1], md, 0644)
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.missing {
		return "", fmt.Errorf("%w: %s", executor.ErrNotFound, name)
	}
	return "/usr/bin/" + name, nil
}

func TestWriteReadLiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meeting.docx")
	lit := Literal{
		Title:        "Comité de Gerencia",
		Date:         time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		Participants: []string{"Ana", "Luis"},
		Entries: []Entry{
			{ID: 1, Speaker: "Ana", Text: "Hola"},
			{ID: 2, Speaker: "Luis", Text: "[Audio no reconocido o silencio]"},
			{ID: 3, Speaker: "Ana", Text: "Gracias"},
		},
	}

	if err := WriteLiteral(path, lit); err != nil {
		t.Fatalf("WriteLiteral() error = %v", err)
	}

	paras, err := ReadParagraphs(path)
	if err != nil {
		t.Fatalf("ReadParagraphs() error = %v", err)
	}

	joined := strings.Join(paras, "\n")
	for _, want := range []string{"Comité de Gerencia", "Acta de Reunión", "Fecha: 07-03-2024", "Participantes: Ana, Luis", separator} {
		if !strings.Contains(joined, want) {
			t.Errorf("document missing %q", want)
		}
	}

	var dialogues []string
	for _, p := range paras {
		if strings.HasPrefix(p, "Diálogo ") {
			dialogues = append(dialogues, p)
		}
	}
	want := []string{
		"Diálogo 1 - Ana: Hola",
		"Diálogo 2 - Luis: [Audio no reconocido o silencio]",
		"Diálogo 3 - Ana: Gracias",
	}
	if len(dialogues) != len(want) {
		t.Fatalf("dialogue paragraphs = %v, want %v", dialogues, want)
	}
	for i := range want {
		if dialogues[i] != want[i] {
			t.Errorf("dialogue %d = %q, want %q", i, dialogues[i], want[i])
		}
	}
}

func TestParseParagraphs(t *testing.T) {
	xmlDoc := `<?xml version="1.0"?>
<w:document xmlns:w="` + wordNS + `"><w:body>
<w:p><w:r><w:t>Uno</w:t></w:r><w:r><w:tab/><w:t xml:space="preserve"> dos</w:t></w:r></w:p>
<w:p></w:p>
<w:p><w:r><w:t>Tres</w:t><w:br/><w:t>cuatro</w:t></w:r></w:p>
</w:body></w:document>`

	got, err := parseParagraphs(strings.NewReader(xmlDoc))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Uno\t dos", "", "Tres\ncuatro"}
	if len(got) != len(want) {
		t.Fatalf("parseParagraphs() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadParagraphsNotDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.docx")
	os.WriteFile(path, []byte("plain"), 0644)
	if _, err := ReadParagraphs(path); err == nil {
		t.Error("ReadParagraphs() should fail for non-zip input")
	}
}

func TestNativeConvert(t *testing.T) {
	conv, err := NewConverter("native", nil, logger.Nop())
	if err != nil {
		t.Fatal(err)
	}

	md := "# ACTA No. 12\n\n## ORDEN DEL DÍA\n1. Apertura\n- **Responsable:** Ana\n\n| Tema | Estado |\n|---|---|\n| Red | Aprobado |\n"
	path := filepath.Join(t.TempDir(), "official.docx")
	if err := conv.Convert(context.Background(), md, path); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	paras, err := ReadParagraphs(path)
	if err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(paras, "\n")
	for _, want := range []string{"ACTA No. 12", "ORDEN DEL DÍA", "1. Apertura", "• Responsable: Ana", "Tema | Estado", "Red | Aprobado"} {
		if !strings.Contains(joined, want) {
			t.Errorf("converted document missing %q in %q", want, joined)
		}
	}
	if strings.Contains(joined, "---") {
		t.Errorf("table separator leaked into document: %q", joined)
	}
}

func TestPandocConvert(t *testing.T) {
	tests := []struct {
		name     string
		missing  bool
		wantErr  bool
		notFound bool
	}{
		{name: "converts", missing: false},
		{name: "engine missing", missing: true, wantErr: true, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := &fakeExecutor{missing: tt.missing}
			conv, err := NewConverter("pandoc", fx, logger.Nop())
			if err != nil {
				t.Fatal(err)
			}

			out := filepath.Join(t.TempDir(), "official.docx")
			err = conv.Convert(context.Background(), "# Acta", out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrEngineNotFound) != tt.notFound {
				t.Errorf("Convert() error = %v, notFound want %v", err, tt.notFound)
			}
			if tt.wantErr {
				return
			}
			if fx.args[0] != "acta.md" || fx.dir == "" {
				t.Errorf("pandoc invoked with dir=%q args=%v", fx.dir, fx.args)
			}
			if data, _ := os.ReadFile(out); string(data) != "# Acta" {
				t.Errorf("output = %q", data)
			}
		})
	}
}

func TestNewConverterUnknown(t *testing.T) {
	if _, err := NewConverter("word", nil, logger.Nop()); err == nil {
		t.Error("NewConverter() should reject unknown kinds")
	}
}
