package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/aishwaryacr5/Taste-perception/models"
)

// Column layout of the persisted file. The header row and column order are
// part of the external contract and must never change on append.
var feedbackHeader = []string{"Name", "Age", "Satisfaction", "Comment", "Sentiment"}

// FeedbackCSV owns the persisted feedback file: one UTF-8 CSV with a header
// row and one row per entry, append-only. It is the sole reader and writer
// of the file; the mutex only serializes handlers within this process, no
// cross-process locking is attempted.
type FeedbackCSV struct {
	path string
	mu   sync.Mutex
}

func NewFeedbackCSV(path string) *FeedbackCSV {
	return &FeedbackCSV{path: path}
}

// Append persists one entry. The file is created with its header on first
// write; afterwards each call appends a single row, leaving every prior row
// untouched. Failures wrap models.ErrPersistWrite and nothing partial is
// left behind beyond the failed row itself.
func (s *FeedbackCSV) Append(e models.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	needHeader, err := s.needsHeader()
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistWrite, err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistWrite, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(feedbackHeader); err != nil {
			return fmt.Errorf("%w: %v", models.ErrPersistWrite, err)
		}
	}
	record := []string{
		e.Name,
		strconv.Itoa(e.Age),
		strconv.Itoa(e.Satisfaction),
		e.Comment,
		string(e.Sentiment),
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistWrite, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistWrite, err)
	}
	return nil
}

// ReadAll returns every persisted entry in append order. A store that has
// never been written yields an empty slice, not an error.
func (s *FeedbackCSV) ReadAll() ([]models.FeedbackEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAllLocked()
}

// CountBySentiment tallies the persisted entries per sentiment bucket.
// An empty map means no feedback has been recorded yet.
func (s *FeedbackCSV) CountBySentiment() (map[models.Sentiment]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readAllLocked()
	if err != nil {
		return nil, err
	}
	counts := map[models.Sentiment]int{}
	for _, e := range entries {
		counts[e.Sentiment]++
	}
	return counts, nil
}

func (s *FeedbackCSV) readAllLocked() ([]models.FeedbackEntry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.FeedbackEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistWrite, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistWrite, err)
	}
	if len(rows) == 0 {
		return []models.FeedbackEntry{}, nil
	}
	if len(rows[0]) != len(feedbackHeader) {
		return nil, fmt.Errorf("%w: unexpected column count %d", models.ErrPersistWrite, len(rows[0]))
	}

	entries := make([]models.FeedbackEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		age, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad age %q", models.ErrPersistWrite, row[1])
		}
		satisfaction, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: bad satisfaction %q", models.ErrPersistWrite, row[2])
		}
		entries = append(entries, models.FeedbackEntry{
			Name:         row[0],
			Age:          age,
			Satisfaction: satisfaction,
			Comment:      row[3],
			Sentiment:    models.Sentiment(row[4]),
		})
	}
	return entries, nil
}

func (s *FeedbackCSV) needsHeader() (bool, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return info.Size() == 0, nil
}
