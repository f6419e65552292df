// Package export moves notes in and out of YAML documents.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gerunddev/notemark/internal/notes"
	"gopkg.in/yaml.v3"
)

// Version is written to every exported document.
const Version = 1

type document struct {
	Version int          `yaml:"version"`
	Notes   []notes.Note `yaml:"notes"`
}

// Write encodes list as a YAML document
func Write(w io.Writer, list []notes.Note) error {
	if list == nil {
		list = []notes.Note{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Version: Version, Notes: list}); err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	return enc.Close()
}

// Read decodes a document produced by Write
func Read(r io.Reader) ([]notes.Note, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []notes.Note{}, nil
		}
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	if doc.Version > Version {
		return nil, fmt.Errorf("unsupported export version %d", doc.Version)
	}
	if doc.Notes == nil {
		doc.Notes = []notes.Note{}
	}
	return doc.Notes, nil
}

// Import adds every note in list to m. Imported notes get fresh ids; notes
// with empty text are skipped. It returns the number of notes added.
func Import(ctx context.Context, m *notes.Model, list []notes.Note) (int, error) {
	added := 0
	for _, n := range list {
		if _, err := m.Add(ctx, n.Text); err != nil {
			if errors.Is(err, notes.ErrEmptyNote) {
				continue
			}
			return added, fmt.Errorf("failed to import note %d: %w", n.ID, err)
		}
		added++
	}
	return added, nil
}
