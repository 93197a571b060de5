// Package names resolves country codes to display names.
//
// Names come from plain text resources, one "<code>;<name>" entry per line,
// with one file per language (names_en.txt, names_fr.txt, ...).
package names

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"flaggallery/flags"
	"flaggallery/hal"
)

// DefaultLanguage is used when the requested language has no resource.
const DefaultLanguage = "en"

// ErrNoResource is returned when no resource could be found for a language.
var ErrNoResource = errors.New("no name resource")

//go:embed data/names_*.txt
var embedded embed.FS

// Embedded returns the built-in resources, laid out as names_<lang>.txt at
// the root.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Table maps codes to display names. The zero value is an empty table.
type Table struct {
	Lang  string
	names map[flags.Code]string
}

// Name returns the display name for code, or "" if it has none.
func (t Table) Name(code flags.Code) string { return t.names[code] }

func (t Table) Len() int { return len(t.names) }

// Parse reads a resource. Blank lines and lines starting with '#' are
// skipped. Malformed lines are skipped too; they are returned together as
// one joined error alongside the usable table.
func Parse(r io.Reader) (Table, error) {
	t := Table{names: make(map[flags.Code]string)}
	var errs []error
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if line == 1 {
			s = strings.TrimPrefix(s, "\ufeff")
		}
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		code, name, ok := strings.Cut(s, ";")
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: missing ';'", line))
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(code))
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("line %d: bad code %q", line, code))
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			errs = append(errs, fmt.Errorf("line %d: empty name", line))
			continue
		}
		t.names[flags.Code(n)] = name
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, err)
	}
	return t, errors.Join(errs...)
}

// FileName is the resource name for lang.
func FileName(lang string) string { return "names_" + lang + ".txt" }

// Load returns the table for lang from fsys. When lang has no resource the
// fallback language is tried; when neither has one, the empty table is
// returned. Every step down the chain and every malformed line is logged.
// Load never fails: callers always get a usable table.
func Load(fsys fs.FS, lang, fallback string, log hal.Logger) Table {
	tried := []string{lang}
	if fallback != "" && fallback != lang {
		tried = append(tried, fallback)
	}
	for _, l := range tried {
		t, err := loadOne(fsys, l)
		if errors.Is(err, ErrNoResource) {
			hal.Logf(log, "names: %v", err)
			continue
		}
		if err != nil {
			hal.Logf(log, "names: %s: %v", FileName(l), err)
		}
		t.Lang = l
		return t
	}
	hal.Logf(log, "names: using codes only")
	return Table{}
}

func loadOne(fsys fs.FS, lang string) (Table, error) {
	if lang == "" {
		return Table{}, fmt.Errorf("empty language: %w", ErrNoResource)
	}
	f, err := fsys.Open(FileName(lang))
	if errors.Is(err, fs.ErrNotExist) {
		return Table{}, fmt.Errorf("%s: %w", lang, ErrNoResource)
	}
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Languages lists the languages fsys has a resource for.
func Languages(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "names_*.txt")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSuffix(strings.TrimPrefix(m, "names_"), ".txt"))
	}
	return out, nil
}
