package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// ErrFetch marks any failure to retrieve a page. The pipeline for that URL
// aborts; there is no retry at this layer.
var ErrFetch = errors.New("fetch failed")

const (
	// Some job boards serve a captcha page to the default Go user agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	fetchTimeout = 10 * time.Second
	maxBodySize  = 2 << 20
)

// Page is the parsed result of fetching a job posting.
type Page struct {
	// VisibleText is the document's text with every line trimmed and blank
	// lines dropped. Client-rendered pages may yield little or nothing here.
	VisibleText string

	// StructuredBlocks holds the JSON values recovered from
	// application/ld+json script blocks. Malformed blocks are skipped.
	StructuredBlocks []interface{}
}

// Fetcher retrieves and statically parses job posting pages.
type Fetcher struct {
	client *http.Client
}

func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch issues a GET for the URL and parses the HTML. No JavaScript runs.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrFetch, resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: parse HTML: %v", ErrFetch, err)
	}

	return parsePage(doc), nil
}

func parsePage(doc *html.Node) *Page {
	var text strings.Builder
	var blocks []interface{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script":
				if scriptType(n) == "application/ld+json" {
					if v, ok := decodeBlock(nodeText(n)); ok {
						blocks = append(blocks, v)
					}
				}
				return
			case "style", "noscript", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return &Page{
		VisibleText:      collapseLines(text.String()),
		StructuredBlocks: blocks,
	}
}

func scriptType(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "type" {
			return strings.ToLower(strings.TrimSpace(attr.Val))
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

func decodeBlock(raw string) (interface{}, bool) {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Debug("skipping malformed ld+json block", "error", err)
		return nil, false
	}
	return v, true
}

// collapseLines trims each line and drops the blank ones.
func collapseLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
