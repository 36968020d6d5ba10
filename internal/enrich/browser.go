package enrich

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// BrowserSource renderiza una página de horarios con Chrome headless
// y retorna su texto visible. La plantilla de URL acepta {origin} y {destination}.
type BrowserSource struct {
	urlTemplate string
	settle      time.Duration
}

// NewBrowserSource crea la fuente con una plantilla de URL
// (ej: "https://example.co.tz/timetable?from={origin}&to={destination}")
func NewBrowserSource(urlTemplate string) *BrowserSource {
	return &BrowserSource{
		urlTemplate: urlTemplate,
		settle:      2 * time.Second,
	}
}

func (s *BrowserSource) Name() string { return "browser" }

// PageURL arma la URL con origen y destino escapados
func (s *BrowserSource) PageURL(origin, destination string) string {
	return strings.NewReplacer(
		"{origin}", url.QueryEscape(origin),
		"{destination}", url.QueryEscape(destination),
	).Replace(s.urlTemplate)
}

// Generate navega a la página y retorna el texto del body
func (s *BrowserSource) Generate(ctx context.Context, origin, destination string) (string, error) {
	pageURL := s.PageURL(origin, destination)
	log.Printf("🌐 [ENRICH] Navegando %s", pageURL)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(browserUserAgent),
	)

	// El allocator hereda el contexto del llamador: el timeout del Enricher mata Chrome
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var text string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(s.settle), // Esperar a que cargue JavaScript
		chromedp.Text(`body`, &text, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("error rendering %s: %w", pageURL, err)
	}

	log.Printf("📄 [ENRICH] Texto obtenido: %d bytes", len(text))
	return text, nil
}
