package texvars

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kjk/py2tex/atomicfile"
	"github.com/kjk/py2tex/log"
	"github.com/kjk/py2tex/u"
)

// ErrNotFound is returned when deleting a name that is not in the store
var ErrNotFound = errors.New("variable not found")

type Store struct {
	Path string

	loaded bool
	names  []string
	values map[string]string
}

// Open returns a Store backed by the file at path.
// The file is not read until the first access.
func Open(path string) *Store {
	return &Store{Path: path}
}

func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	d, exists, err := u.ReadFileMaybe(s.Path)
	if err != nil {
		return err
	}
	s.names = nil
	s.values = map[string]string{}
	if !exists {
		log.Logf("No pre-existing file found. Writing will be done to a fresh file.\n")
		s.loaded = true
		return nil
	}
	entries, err := Parse(d)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Path, err)
	}
	for _, e := range entries {
		s.set(e.Name, e.Value)
	}
	log.Verbosef("Loaded %d variables from '%s'\n", len(s.names), s.Path)
	s.loaded = true
	return nil
}

func (s *Store) set(name, value string) (prev string, existed bool) {
	prev, existed = s.values[name]
	if !existed {
		s.names = append(s.names, name)
	}
	s.values[name] = value
	return prev, existed
}

// Entries returns a copy of name => value mapping
func (s *Store) Entries() (map[string]string, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	res := make(map[string]string, len(s.values))
	for k, v := range s.values {
		res[k] = v
	}
	return res, nil
}

// Names returns names in the order they are written to the file
func (s *Store) Names() ([]string, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]string{}, s.names...), nil
}

func (s *Store) Get(name string) (string, bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", false, err
	}
	v, ok := s.values[name]
	return v, ok, nil
}

// Set changes the value in memory without writing the file.
// overwritten is true if name existed with a different value.
func (s *Store) Set(name, value string) (prev string, overwritten bool, err error) {
	if err = s.ensureLoaded(); err != nil {
		return "", false, err
	}
	prev, existed := s.set(name, value)
	return prev, existed && prev != value, nil
}

// Save sets name to value and re-writes the file.
// Over-writing a different value logs a warning.
func (s *Store) Save(name, value string) error {
	log.Logf("Saving %s as %s\n", value, name)
	prev, overwritten, err := s.Set(name, value)
	if err != nil {
		return err
	}
	if overwritten {
		log.Warnf("Overwriting variable %s. New value %s, previous value %s\n", name, value, prev)
	}
	log.Event("save", "name", name, "value", value, "path", s.Path)
	return s.Write()
}

// Delete removes name and re-writes the file.
// Returns an error wrapping ErrNotFound if name doesn't exist, in which
// case the file is not touched.
func (s *Store) Delete(name string) error {
	log.Logf("Deleting %s\n", name)
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.values[name]; !ok {
		return fmt.Errorf("%w: '%s' in '%s'", ErrNotFound, name, s.Path)
	}
	delete(s.values, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	log.Event("delete", "name", name, "path", s.Path)
	return s.Write()
}

// Render returns the content Write would store in the file
func (s *Store) Render() ([]byte, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	var sb strings.Builder
	for _, name := range s.names {
		sb.WriteString(FormatLine(name, s.values[name]))
	}
	return []byte(sb.String()), nil
}

// Write replaces the file with all entries, one definition per line
func (s *Store) Write() error {
	d, err := s.Render()
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(s.Path, d)
}

// IsValidName returns true if name can be used as a LaTeX macro name
// i.e. only has letters
func IsValidName(name string) bool {
	return u.IsASCIILetters(name)
}
