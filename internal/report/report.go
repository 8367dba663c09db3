// Package report renders the extracted day schedules into the Telegram
// message body. The message layout is fixed; only the address, queue and
// schedule contents vary between runs.
package report

import (
	"fmt"
	"strings"
	"time"

	"dtek-shutdowns-monitor/internal/models"
)

const (
	pendingNotice = "⏳ Графік на завтра ще не доступний (зазвичай з'являється ввечері)"
	noOutages     = "✅ Відключень не заплановано"

	dateFormat      = "02.01"
	timestampFormat = "15:04 02.01.2006"
)

var separator = strings.Repeat("═", 50)

// FormatDay renders one day's schedule. Outage lines come first, then
// possible-outage lines, each group in chronological order.
func FormatDay(day models.DaySchedule) string {
	if !day.HasData {
		return pendingNotice
	}
	if len(day.Intervals) == 0 {
		return noOutages
	}

	var lines []string
	for _, iv := range day.Intervals {
		if iv.Kind == models.SlotOff {
			lines = append(lines, fmt.Sprintf("🪫 %s — %s", iv.Start, iv.End))
		}
	}
	for _, iv := range day.Intervals {
		if iv.Kind == models.SlotPossible {
			lines = append(lines, fmt.Sprintf("❓ %s — %s (можливо)", iv.Start, iv.End))
		}
	}
	return strings.Join(lines, "\n")
}

// Compose assembles the full report: header, today's schedule,
// tomorrow's schedule and the generation timestamp. The now argument
// must already be in the reference timezone.
func Compose(address, queue string, today, tomorrow models.DaySchedule, now time.Time) string {
	parts := []string{
		"⚡️ <b>Статус електропостачання</b>",
		fmt.Sprintf("🏠 <b>Адреса:</b> %s", address),
		fmt.Sprintf("🔢 <b>Черга:</b> %s", queue),
		separator,
		fmt.Sprintf("📅 <b>Графік на сьогодні (%s):</b>", now.Format(dateFormat)),
		FormatDay(today),
		separator,
		fmt.Sprintf("📅 <b>Графік на завтра (%s):</b>", now.AddDate(0, 0, 1).Format(dateFormat)),
		FormatDay(tomorrow),
		separator,
		fmt.Sprintf("🕐 <i>Оновлено: %s</i>", now.Format(timestampFormat)),
	}
	return strings.Join(parts, "\n")
}
