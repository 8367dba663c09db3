package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dtek-shutdowns-monitor/internal/models"
)

// Storage keeps the record of the last delivered message per chat.
// Load reports a stale record (sent on an earlier calendar day in the
// reference timezone) as absent and removes it.
type Storage interface {
	Load(chatID int64) (*models.SavedMessage, error)
	Save(chatID int64, msg models.SavedMessage) error
	Delete(chatID int64) error
}

type fileStorage struct {
	dir string
	loc *time.Location
	now func() time.Time
}

func NewFileStorage(dir string, loc *time.Location) Storage {
	return &fileStorage{dir: dir, loc: loc, now: time.Now}
}

// path resolves the record file for a chat. Chat 0 is the global slot
// used when no explicit chat identity is configured.
func (s *fileStorage) path(chatID int64) string {
	if chatID == 0 {
		return filepath.Join(s.dir, "last-message.json")
	}
	return filepath.Join(s.dir, fmt.Sprintf("last-message-%d.json", chatID))
}

func (s *fileStorage) Load(chatID int64) (*models.SavedMessage, error) {
	path := s.path(chatID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var msg models.SavedMessage
	if err := json.Unmarshal(jsonData, &msg); err != nil {
		return nil, err
	}

	messageDay := time.Unix(msg.Date, 0).In(s.loc).Format(time.DateOnly)
	today := s.now().In(s.loc).Format(time.DateOnly)
	if messageDay < today {
		if err := s.Delete(chatID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &msg, nil
}

func (s *fileStorage) Save(chatID int64, msg models.SavedMessage) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path(chatID), jsonData, 0644)
}

func (s *fileStorage) Delete(chatID int64) error {
	err := os.Remove(s.path(chatID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
