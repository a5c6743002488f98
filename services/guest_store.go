package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"wedding_server/models"
)

// GuestStore holds the guest list as one document, read and replaced
// wholesale on every mutation. Concurrent writers race last-writer-wins;
// admin usage is low-concurrency and the sync is self-correcting, so the
// race is documented rather than locked away.
type GuestStore interface {
	// Load returns the guest list. A missing document is initialized to []
	// and returned empty; any other read failure propagates.
	Load(ctx context.Context) ([]models.Guest, error)
	// Save replaces the whole document in a single write.
	Save(ctx context.Context, guests []models.Guest) error
}

// FileGuestStore persists the guest list as a pretty-printed JSON array
// at a configured path.
type FileGuestStore struct {
	Path string
}

func (s *FileGuestStore) Load(_ context.Context) ([]models.Guest, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read guests file '%s': %w", s.Path, err)
		}
		if err := os.WriteFile(s.Path, []byte("[]"), 0644); err != nil {
			return nil, fmt.Errorf("failed to initialize guests file '%s': %w", s.Path, err)
		}
		return []models.Guest{}, nil
	}

	var guests []models.Guest
	if err := json.Unmarshal(data, &guests); err != nil {
		return nil, fmt.Errorf("failed to parse guests file '%s': %w", s.Path, err)
	}
	return guests, nil
}

func (s *FileGuestStore) Save(_ context.Context, guests []models.Guest) error {
	if guests == nil {
		guests = []models.Guest{}
	}
	data, err := json.MarshalIndent(guests, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal guests: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write guests file '%s': %w", s.Path, err)
	}
	return nil
}
