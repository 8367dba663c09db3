package notifier

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"dtek-shutdowns-monitor/internal/models"
)

// Notifier delivers report messages. Both calls return the message
// identity Telegram reports back, which the caller persists to decide
// between creating and editing on the next run.
type Notifier interface {
	SendMessage(chatID int64, text string) (models.SavedMessage, error)
	EditMessage(chatID int64, messageID int, text string) (models.SavedMessage, error)
}

type telegramNotifier struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramNotifier(token string) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &telegramNotifier{bot: bot}, nil
}

func (n *telegramNotifier) SendMessage(chatID int64, text string) (models.SavedMessage, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	res, err := n.bot.Send(msg)
	if err != nil {
		return models.SavedMessage{}, err
	}
	return models.SavedMessage{MessageID: res.MessageID, Date: int64(res.Date)}, nil
}

func (n *telegramNotifier) EditMessage(chatID int64, messageID int, text string) (models.SavedMessage, error) {
	editMsg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	editMsg.ParseMode = tgbotapi.ModeHTML
	res, err := n.bot.Send(editMsg)
	if err != nil {
		return models.SavedMessage{}, err
	}
	return models.SavedMessage{MessageID: res.MessageID, Date: int64(res.Date)}, nil
}
