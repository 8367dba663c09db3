package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"dtek-shutdowns-monitor/internal/config"
	"dtek-shutdowns-monitor/internal/notifier"
	"dtek-shutdowns-monitor/internal/report"
	"dtek-shutdowns-monitor/internal/schedule"
	"dtek-shutdowns-monitor/internal/scraper"
	"dtek-shutdowns-monitor/internal/storage"
)

type App struct {
	cfg      config.Config
	scraper  scraper.Scraper
	storage  storage.Storage
	notifier notifier.Notifier
	logger   *log.Logger
	loc      *time.Location
}

func NewApp(cfg config.Config, scraper scraper.Scraper, storage storage.Storage, notifier notifier.Notifier, logger *log.Logger, loc *time.Location) *App {
	return &App{
		cfg:      cfg,
		scraper:  scraper,
		storage:  storage,
		notifier: notifier,
		logger:   logger,
		loc:      loc,
	}
}

func (a *App) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			a.logger.Println("Shutting down monitor...")
			return
		default:
			a.logger.Println("Checking shutdowns schedule...")
			if err := a.Check(); err != nil {
				a.logger.Printf("Error checking schedule: %v", err)
			}

			select {
			case <-ctx.Done():
				a.logger.Println("Shutting down monitor...")
				return
			case <-time.After(a.cfg.CheckInterval):
			}
		}
	}
}

// Check performs one full run: fetch the payload, compose the report
// and deliver it. Any failure aborts the run; nothing is retried.
func (a *App) Check() error {
	info, err := a.scraper.FetchShutdowns(a.cfg.City, a.cfg.Street)
	if err != nil {
		return fmt.Errorf("fetch error: %w", err)
	}

	message, err := a.composeReport(info)
	if err != nil {
		return err
	}

	return a.deliver(message)
}

func (a *App) composeReport(info *schedule.Response) (string, error) {
	if info == nil || info.Data == nil {
		return "", fmt.Errorf("power outage info missed")
	}

	queue := info.Queue(a.cfg.House)
	a.logger.Printf("Resolved queue: %s", queue)

	today := info.TodaySchedule(queue)
	tomorrow := info.TomorrowSchedule(queue)

	return report.Compose(a.cfg.Address(), queue, today, tomorrow, time.Now().In(a.loc)), nil
}

// deliver sends the report as a new message when no message from today
// is on record, and edits the recorded one otherwise. A failed call
// drops the record so the next run starts fresh instead of pointing at
// a message with unknown content.
func (a *App) deliver(text string) error {
	prev, err := a.storage.Load(a.cfg.ChatID)
	if err != nil {
		a.logger.Printf("could not load last message record: %v", err)
	}

	if prev != nil {
		a.logger.Println("Updating existing message.")
		msg, err := a.notifier.EditMessage(a.cfg.ChatID, prev.MessageID, text)
		if err != nil {
			_ = a.storage.Delete(a.cfg.ChatID)
			return fmt.Errorf("error editing message: %w", err)
		}
		return a.storage.Save(a.cfg.ChatID, msg)
	}

	a.logger.Println("Sending new message.")
	msg, err := a.notifier.SendMessage(a.cfg.ChatID, text)
	if err != nil {
		_ = a.storage.Delete(a.cfg.ChatID)
		return fmt.Errorf("error sending message: %w", err)
	}
	return a.storage.Save(a.cfg.ChatID, msg)
}
