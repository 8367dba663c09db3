package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dtek-shutdowns-monitor/internal/app"
	"dtek-shutdowns-monitor/internal/config"
	"dtek-shutdowns-monitor/internal/notifier"
	"dtek-shutdowns-monitor/internal/scraper"
	"dtek-shutdowns-monitor/internal/storage"
)

var (
	checkInterval int
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Запустити бота для періодичної перевірки графіків",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.New(os.Stdout, "[MONITOR] ", log.LstdFlags|log.Lshortfile)

		monitorApp := buildApp(logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Println("Starting DTEK Shutdowns Monitor...")
		monitorApp.Run(ctx)
		logger.Println("Monitor stopped gracefully.")
	},
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Виконати одну перевірку та надіслати звіт",
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.New(os.Stdout, "[SEND] ", log.LstdFlags|log.Lshortfile)

		monitorApp := buildApp(logger)

		if err := monitorApp.Check(); err != nil {
			logger.Fatalf("Check failed: %v", err)
		}
		logger.Println("Report delivered.")
	},
}

func buildApp(logger *log.Logger) *app.App {
	cfg := config.Load(checkInterval)
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}

	loc, err := time.LoadLocation(cfg.TimeLocation)
	if err != nil {
		logger.Fatalf("Unknown time location %q: %v", cfg.TimeLocation, err)
	}
	time.Local = loc

	s := scraper.NewScraper(logger, loc)
	st := storage.NewFileStorage(cfg.StateDir, loc)
	n, err := notifier.NewTelegramNotifier(cfg.TelegramBotToken)
	if err != nil {
		logger.Fatal(err)
	}

	return app.NewApp(cfg, s, st, n, logger, loc)
}

func init() {
	monitorCmd.Flags().IntVarP(&checkInterval, "check-interval", "i", 300, "Інтервал перевірки в секундах")
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(sendCmd)
}
