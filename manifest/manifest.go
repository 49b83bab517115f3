// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// Record is one labeled audio entry. A manifest line carries either a
// transcript ("text") or a class ("label"); both are kept verbatim.
// Offset and Duration select a window inside the referenced file.
type Record struct {
	AudioFilePath string  `json:"audio_filepath"`
	Duration      float64 `json:"duration"`
	Offset        float64 `json:"offset"`
	Text          string  `json:"text"`
	Label         string  `json:"label"`
}

// Manifest is an immutable, ordered collection of records. Once loaded it
// is safe to share by reference across concurrent readers.
type Manifest struct {
	records []Record
}

// New builds a manifest from explicit records. The slice is copied.
func New(records []Record) *Manifest {
	out := make([]Record, len(records))
	copy(out, records)
	return &Manifest{records: out}
}

// Load reads a JSON-lines manifest file.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse reads one JSON object per line. Blank lines are skipped.
// Every record must carry audio_filepath and a positive duration.
func Parse(r io.Reader) (*Manifest, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if rec.AudioFilePath == "" {
			return nil, fmt.Errorf("line %d: %w: audio_filepath", lineNo, ErrMissingField)
		}
		if rec.Duration <= 0 {
			return nil, fmt.Errorf("line %d: %w: duration", lineNo, ErrMissingField)
		}

		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return &Manifest{records: records}, nil
}

// Len returns the number of records.
func (m *Manifest) Len() int { return len(m.records) }

// At returns the record at index i.
func (m *Manifest) At(i int) Record { return m.records[i] }

// TotalDuration sums the duration of all records in seconds.
func (m *Manifest) TotalDuration() float64 {
	var total float64
	for _, rec := range m.records {
		total += rec.Duration
	}
	return total
}

// Sample returns a uniformly chosen record using rng.
// An empty manifest returns ErrEmpty.
func (m *Manifest) Sample(rng *rand.Rand) (Record, error) {
	if len(m.records) == 0 {
		return Record{}, ErrEmpty
	}
	return m.records[rng.Intn(len(m.records))], nil
}
