package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evarisis/actaflow/internal/config"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "soporte.txt"), []byte("Zoe\n\n  Ana  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "gestion_del_dato.txt"), []byte("Bruno\n"), 0644); err != nil {
		t.Fatal(err)
	}

	members, err := Load(dir, config.DefaultAreas)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []Member{
		{Name: "Ana", Area: "Soporte"},
		{Name: "Bruno", Area: "Gestión del Dato"},
		{Name: "Zoe", Area: "Soporte"},
	}
	if len(members) != len(want) {
		t.Fatalf("Load() = %v, want %v", members, want)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Errorf("members[%d] = %v, want %v", i, members[i], want[i])
		}
	}
}

func TestLoadMissingDir(t *testing.T) {
	members, err := Load(filepath.Join(t.TempDir(), "absent"), config.DefaultAreas)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(members) != 0 {
		t.Errorf("Load() = %v, want empty", members)
	}
}

func TestSelectable(t *testing.T) {
	in := []Member{{Name: "Ana"}, {Name: "Chair"}, {Name: "Me"}}
	got := Selectable(in, "Me", "Chair")
	if len(got) != 1 || got[0].Name != "Ana" {
		t.Errorf("Selectable() = %v, want [Ana]", got)
	}
}
