package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"estatesalehub/internal/domain/entity"
	"estatesalehub/pkg/logger"
)

const (
	sourceName = "EstateSale-Finder.com"
	baseURL    = "https://www.estatesale-finder.com/"

	// Region and sale type ids covering the whole Portland metro feed.
	listURL = baseURL + "all_sales_list.php?saletypeshow=1,2,4,5,7,8,9,10,11,12,13&regionsshow=1,2,3,4,5,6,7,8,9,10,11,12,13,14,15"
)

var knownCities = []string{"Portland", "Beaverton", "Gresham", "Mulino", "Milwaukie", "Lake Oswego"}

// EstateSaleFinderScraper pulls the estatesale-finder.com list page with a
// headless browser. The site renders sale rows with client-side JS, so a
// plain HTTP fetch sees an empty page.
type EstateSaleFinderScraper struct {
	headless bool
}

func NewEstateSaleFinderScraper(headless bool) *EstateSaleFinderScraper {
	return &EstateSaleFinderScraper{
		headless: headless,
	}
}

// saleRow is the raw extraction of one .salerow element.
type saleRow struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ViewLink    string   `json:"viewLink"`
	Paragraphs  []string `json:"paragraphs"`
	ThumbnailURL string  `json:"thumbnailUrl"`
}

func (s *EstateSaleFinderScraper) newContext() (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("log-level", "3"),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Scrape fetches current and upcoming sales for a location. The site only
// covers the Portland area, so other locations return an empty slice.
func (s *EstateSaleFinderScraper) Scrape(ctx context.Context, city, state string) ([]entity.ScrapedListing, error) {
	if strings.ToUpper(state) != "OR" && !strings.EqualFold(city, "portland") {
		logger.Info("estatesale-finder.com does not cover %s, %s; skipping scrape", city, state)
		return []entity.ScrapedListing{}, nil
	}

	browserCtx, cancel := s.newContext()
	defer cancel()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, 2*time.Minute)
	defer cancelTimeout()

	logger.Info("Scraping %s", listURL)

	var rows []saleRow
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(listURL),
		chromedp.Sleep(3*time.Second), // give JS time to render the rows
		chromedp.Evaluate(`
			(function() {
				var rows = [];
				document.querySelectorAll('.salerow').forEach(function(row) {
					var titleEl = row.querySelector('h5 a');
					var viewEl = row.querySelector('a.view');
					var imgEl = row.querySelector('img');
					var paragraphs = [];
					row.querySelectorAll('.columns p').forEach(function(p) {
						paragraphs.push(p.innerText.trim());
					});
					rows.push({
						id: row.id || '',
						title: titleEl ? titleEl.innerText.trim() : '',
						viewLink: viewEl ? viewEl.getAttribute('href') : '',
						paragraphs: paragraphs,
						thumbnailUrl: imgEl ? imgEl.src : ''
					});
				});
				return rows;
			})()
		`, &rows),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape sale list: %w", err)
	}

	var sales []entity.ScrapedListing
	for _, row := range rows {
		if scraped := s.parseRow(row); scraped != nil {
			sales = append(sales, *scraped)
		}
	}

	logger.Info("Scraped %d sales from %s", len(sales), sourceName)
	return sales, nil
}

func (s *EstateSaleFinderScraper) parseRow(row saleRow) *entity.ScrapedListing {
	if !strings.HasPrefix(row.ID, "sale") {
		return nil
	}
	externalID := "estatesale-finder-" + strings.TrimPrefix(row.ID, "sale")

	title := row.Title
	if title == "" {
		title = "Estate Sale"
	}

	address, city, zipCode := parseLocation(row.Paragraphs)
	saleInfo, hours := parseSaleInfo(row.Paragraphs)

	// The list view rarely shows exact dates; default to a week out and
	// tighten when an "Opens 31st Oct" style line is present.
	startDate := time.Now().AddDate(0, 0, 7)
	if opens := parseOpensDate(saleInfo); !opens.IsZero() {
		startDate = opens
	}
	endDate := startDate.AddDate(0, 0, 2)

	description := title
	if saleInfo != "" {
		description += "\n\n" + saleInfo
	}
	if hours != "" {
		description += "\n" + hours
	}

	return &entity.ScrapedListing{
		ExternalID:   externalID,
		Title:        title,
		Description:  description,
		Address:      address,
		City:         city,
		State:        "OR",
		ZipCode:      zipCode,
		StartDate:    startDate,
		EndDate:      endDate,
		ThumbnailURL: row.ThumbnailURL,
		SourceName:   sourceName,
		SourceURL:    baseURL + strings.TrimPrefix(row.ViewLink, "/"),
		ScrapedAt:    time.Now(),
	}
}

func parseLocation(paragraphs []string) (address, city, zipCode string) {
	for _, text := range paragraphs {
		if !containsAny(text, append(knownCities, "OR")) {
			continue
		}

		for _, part := range strings.Fields(text) {
			if len(part) == 5 && isNumeric(part) {
				zipCode = part
				break
			}
		}

		for _, c := range knownCities {
			if strings.Contains(text, c) {
				city = c
				break
			}
		}

		addressText := strings.TrimSpace(strings.TrimPrefix(text, entity.AddressTBA))
		if city != "" {
			if cityIdx := strings.Index(addressText, city); cityIdx > 0 {
				address = strings.TrimSpace(addressText[:cityIdx])
			} else if addressText != "" && !strings.HasPrefix(addressText, city) {
				address = addressText
			}
		}

		if address == "" || address == city {
			address = entity.AddressTBA
		}
		return address, city, zipCode
	}

	return entity.AddressTBA, "", ""
}

func parseSaleInfo(paragraphs []string) (saleInfo, hours string) {
	for _, text := range paragraphs {
		if strings.Contains(text, "Opens") || strings.Contains(text, "day") {
			saleInfo = text
		}
		if (strings.Contains(text, "am") || strings.Contains(text, "pm")) && !strings.Contains(text, "Opens") {
			hours = text
		}
	}
	return saleInfo, hours
}

// parseOpensDate handles lines like "Opens 31st Oct 10:00am".
func parseOpensDate(saleInfo string) time.Time {
	parts := strings.Fields(saleInfo)
	for i, part := range parts {
		if part != "Opens" || i+2 >= len(parts) {
			continue
		}

		day := stripOrdinal(parts[i+1])
		month := parts[i+2]
		dateStr := fmt.Sprintf("%s %s %d", day, month, time.Now().Year())

		for _, layout := range []string{"2 Jan 2006", "02 Jan 2006"} {
			if t, err := time.Parse(layout, dateStr); err == nil {
				return t
			}
		}
	}

	return time.Time{}
}

func stripOrdinal(day string) string {
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if trimmed, ok := strings.CutSuffix(day, suffix); ok && isNumeric(trimmed) {
			return trimmed
		}
	}
	return day
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
