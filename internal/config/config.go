package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	City             string
	Street           string
	House            string
	TelegramBotToken string
	ChatID           int64
	CheckInterval    time.Duration
	StateDir         string
	TimeLocation     string
}

func Load(checkIntervalSeconds int) Config {
	v := viper.New()

	v.SetDefault("STATE_DIR", "data")
	v.SetDefault("TIME_LOCATION", "Europe/Kyiv")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return Config{
		City:             v.GetString("CITY"),
		Street:           v.GetString("STREET"),
		House:            v.GetString("HOUSE"),
		TelegramBotToken: v.GetString("TELEGRAM_BOT_TOKEN"),
		ChatID:           v.GetInt64("TELEGRAM_CHAT_ID"),
		CheckInterval:    time.Duration(checkIntervalSeconds) * time.Second,
		StateDir:         v.GetString("STATE_DIR"),
		TimeLocation:     v.GetString("TIME_LOCATION"),
	}
}

func (c Config) Validate() error {
	if c.City == "" {
		return fmt.Errorf("CITY is not set")
	}
	if c.Street == "" {
		return fmt.Errorf("STREET is not set")
	}
	if c.House == "" {
		return fmt.Errorf("HOUSE is not set")
	}
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	if c.ChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	return nil
}

// Address is the full address line shown in the report header.
func (c Config) Address() string {
	return fmt.Sprintf("%s, %s, %s", c.City, c.Street, c.House)
}
