package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"portal-automation/internal/application/port/output"
	"portal-automation/internal/domain/entity"
)

var _ output.SnapshotStore = (*FileSnapshotStore)(nil)

// FileSnapshotStore writes each snapshot as <dir>/<timestamp>_<name>.json plus
// a .jpg next to it when a screenshot was captured.
type FileSnapshotStore struct {
	dir string
}

func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileSnapshotStore{dir: dir}, nil
}

type snapshotRecord struct {
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Screenshot string    `json:"screenshot,omitempty"`
	TakenAt    time.Time `json:"taken_at"`
}

// Save returns the path of the JSON record.
func (s *FileSnapshotStore) Save(name string, snap *entity.PageSnapshot) (string, error) {
	takenAt := snap.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	base := filepath.Join(s.dir, fmt.Sprintf("%s_%s", takenAt.Format("2006-01-02_15-04-05"), name))

	record := snapshotRecord{
		URL:     snap.URL,
		Title:   snap.Title,
		Text:    snap.Text,
		TakenAt: takenAt,
	}

	if snap.Screenshot != nil && len(snap.Screenshot.Data) > 0 {
		imgPath := base + ".jpg"
		if err := os.WriteFile(imgPath, snap.Screenshot.Data, 0644); err != nil {
			return "", fmt.Errorf("write screenshot: %w", err)
		}
		record.Screenshot = filepath.Base(imgPath)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	path := base + ".json"
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
