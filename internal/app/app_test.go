package app

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dtek-shutdowns-monitor/internal/config"
	"dtek-shutdowns-monitor/internal/models"
	"dtek-shutdowns-monitor/internal/schedule"
)

type memStorage struct {
	records map[int64]models.SavedMessage
}

func newMemStorage() *memStorage {
	return &memStorage{records: map[int64]models.SavedMessage{}}
}

func (s *memStorage) Load(chatID int64) (*models.SavedMessage, error) {
	msg, ok := s.records[chatID]
	if !ok {
		return nil, nil
	}
	return &msg, nil
}

func (s *memStorage) Save(chatID int64, msg models.SavedMessage) error {
	s.records[chatID] = msg
	return nil
}

func (s *memStorage) Delete(chatID int64) error {
	delete(s.records, chatID)
	return nil
}

type fakeNotifier struct {
	sends    int
	edits    int
	editedID int
	lastText string
	failSend bool
	failEdit bool
	nextID   int
	nextDate int64
}

func (n *fakeNotifier) SendMessage(chatID int64, text string) (models.SavedMessage, error) {
	n.sends++
	n.lastText = text
	if n.failSend {
		return models.SavedMessage{}, errors.New("telegram is down")
	}
	return models.SavedMessage{MessageID: n.nextID, Date: n.nextDate}, nil
}

func (n *fakeNotifier) EditMessage(chatID int64, messageID int, text string) (models.SavedMessage, error) {
	n.edits++
	n.editedID = messageID
	n.lastText = text
	if n.failEdit {
		return models.SavedMessage{}, errors.New("message to edit not found")
	}
	return models.SavedMessage{MessageID: messageID, Date: n.nextDate}, nil
}

func newTestApp(st *memStorage, n *fakeNotifier) *App {
	cfg := config.Config{
		City:   "Київ",
		Street: "Хрещатик",
		House:  "12",
		ChatID: 42,
	}
	logger := log.New(io.Discard, "", 0)
	return NewApp(cfg, nil, st, n, logger, time.UTC)
}

func TestDeliverFirstRunCreatesMessage(t *testing.T) {
	st := newMemStorage()
	n := &fakeNotifier{nextID: 7, nextDate: 1700000000}
	a := newTestApp(st, n)

	require.NoError(t, a.deliver("report"))

	assert.Equal(t, 1, n.sends)
	assert.Equal(t, 0, n.edits)
	assert.Equal(t, models.SavedMessage{MessageID: 7, Date: 1700000000}, st.records[42])
}

func TestDeliverSecondRunEditsStoredMessage(t *testing.T) {
	st := newMemStorage()
	st.records[42] = models.SavedMessage{MessageID: 7, Date: 1700000000}
	n := &fakeNotifier{nextDate: 1700003600}
	a := newTestApp(st, n)

	require.NoError(t, a.deliver("updated report"))

	assert.Equal(t, 0, n.sends)
	assert.Equal(t, 1, n.edits)
	assert.Equal(t, 7, n.editedID)
	assert.Equal(t, "updated report", n.lastText)
	assert.Equal(t, models.SavedMessage{MessageID: 7, Date: 1700003600}, st.records[42])
}

func TestDeliverFailedSendDropsState(t *testing.T) {
	st := newMemStorage()
	n := &fakeNotifier{failSend: true}
	a := newTestApp(st, n)

	err := a.deliver("report")
	require.Error(t, err)
	assert.NotContains(t, st.records, int64(42))
}

func TestDeliverFailedEditDropsState(t *testing.T) {
	st := newMemStorage()
	st.records[42] = models.SavedMessage{MessageID: 7, Date: 1700000000}
	n := &fakeNotifier{failEdit: true}
	a := newTestApp(st, n)

	err := a.deliver("report")
	require.Error(t, err)
	assert.NotContains(t, st.records, int64(42))

	// Next run starts from scratch with a fresh send.
	n.failEdit = false
	n.nextID = 8
	require.NoError(t, a.deliver("report"))
	assert.Equal(t, 1, n.sends)
	assert.Equal(t, 8, st.records[42].MessageID)
}

func TestComposeReportRequiresData(t *testing.T) {
	a := newTestApp(newMemStorage(), &fakeNotifier{})

	_, err := a.composeReport(nil)
	assert.Error(t, err)

	_, err = a.composeReport(&schedule.Response{})
	assert.Error(t, err)
}

func TestComposeReport(t *testing.T) {
	a := newTestApp(newMemStorage(), &fakeNotifier{})

	info := &schedule.Response{
		Data: map[string]schedule.HouseInfo{
			"12": {SubTypeReason: []string{"GPV5.1"}},
		},
	}

	text, err := a.composeReport(info)
	require.NoError(t, err)
	assert.Contains(t, text, "Київ, Хрещатик, 12")
	assert.Contains(t, text, "GPV5.1")
	assert.Contains(t, text, "✅ Відключень не заплановано")
}

func TestComposeReportUnknownQueue(t *testing.T) {
	a := newTestApp(newMemStorage(), &fakeNotifier{})

	info := &schedule.Response{Data: map[string]schedule.HouseInfo{}}

	text, err := a.composeReport(info)
	require.NoError(t, err)
	assert.Contains(t, text, schedule.UnknownQueue)
}
