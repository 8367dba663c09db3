package scraper

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"

	"dtek-shutdowns-monitor/internal/schedule"
)

const (
	shutdownsPage    = "https://www.dtek-kem.com.ua/ua/shutdowns"
	csrfMetaSelector = `meta[name="csrf-token"]`
	updateFactLayout = "02.01.2006, 15:04:05"
)

// ajaxScript runs inside the page so the request carries the site's
// cookies alongside the csrf token.
const ajaxScript = `async ({ city, street, updated, token }) => {
	const formData = new URLSearchParams()
	formData.append("method", "getHomeNum")
	formData.append("data[0][name]", "city")
	formData.append("data[0][value]", city)
	formData.append("data[1][name]", "street")
	formData.append("data[1][value]", street)
	formData.append("data[2][name]", "updateFact")
	formData.append("data[2][value]", updated)

	const response = await fetch("/ua/ajax", {
		method: "POST",
		headers: {
			"x-requested-with": "XMLHttpRequest",
			"x-csrf-token": token,
		},
		body: formData,
	})
	return await response.json()
}`

// Scraper fetches the raw shutdowns payload for an address.
type Scraper interface {
	FetchShutdowns(city, street string) (*schedule.Response, error)
}

type playwrightScraper struct {
	logger *log.Logger
	loc    *time.Location
}

func NewScraper(logger *log.Logger, loc *time.Location) Scraper {
	return &playwrightScraper{logger: logger, loc: loc}
}

func (s *playwrightScraper) FetchShutdowns(city, street string) (*schedule.Response, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}
	defer browser.Close()

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:  playwright.String("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/143.0.0.0 Safari/537.36"),
		Locale:     playwright.String("uk-UA,uk;"),
		TimezoneId: playwright.String("Europe/Kiev"),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create new context: %w", err)
	}
	defer context.Close()

	page, err := context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	defer page.Close()

	_, err = page.Goto(shutdownsPage, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		return nil, fmt.Errorf("could not goto: %w", err)
	}

	token, err := page.Locator(csrfMetaSelector).GetAttribute("content")
	if err != nil {
		return nil, fmt.Errorf("could not read csrf token: %w", err)
	}

	raw, err := page.Evaluate(ajaxScript, map[string]interface{}{
		"city":    city,
		"street":  street,
		"updated": time.Now().In(s.loc).Format(updateFactLayout),
		"token":   token,
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch shutdowns data: %w", err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("could not re-encode response: %w", err)
	}

	var resp schedule.Response
	if err := json.Unmarshal(jsonData, &resp); err != nil {
		return nil, fmt.Errorf("could not parse response: %w", err)
	}

	s.logger.Printf("fetched shutdowns payload: %d houses, %d schedule days", len(resp.Data), len(resp.Fact.Data))
	return &resp, nil
}
