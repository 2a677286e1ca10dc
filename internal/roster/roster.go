// Package roster loads the staff lists that meeting participants are picked from.
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evarisis/actaflow/internal/config"
)

type Member struct {
	Name string
	Area string
}

// Load reads one newline-delimited file per area. Missing files yield no
// members for that area.
func Load(dir string, areas []config.AreaConfig) ([]Member, error) {
	var members []Member
	for _, area := range areas {
		names, err := readNames(filepath.Join(dir, area.File))
		if err != nil {
			return nil, fmt.Errorf("load area %s: %w", area.Name, err)
		}
		for _, n := range names {
			members = append(members, Member{Name: n, Area: area.Name})
		}
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})
	return members, nil
}

// Selectable filters out the people who are always present.
func Selectable(members []Member, currentUser, chair string) []Member {
	var out []Member
	for _, m := range members {
		if m.Name == currentUser || m.Name == chair {
			continue
		}
		out = append(out, m)
	}
	return out
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			names = append(names, line)
		}
	}
	return names, sc.Err()
}
