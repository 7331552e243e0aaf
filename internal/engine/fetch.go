package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// FetchPage fetches a posting page and returns the raw HTML body.
// Prefers BrowserClient (Chrome TLS fingerprint) when configured — job
// boards block non-browser fingerprints — falling back to plain net/http.
func FetchPage(ctx context.Context, targetURL, referer string) ([]byte, error) {
	IncrFetchRequests()

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	if cfg.BrowserClient != nil {
		headers := ChromeHeaders()
		headers["accept"] = "text/html,application/xhtml+xml,application/xml;q=0.9"
		if referer != "" {
			headers["referer"] = referer
		}

		data, err := RetryDo(ctx, DefaultRetryConfig, func() ([]byte, error) {
			d, _, status, e := cfg.BrowserClient.Do("GET", targetURL, headers, nil)
			if e != nil {
				return nil, e
			}
			if status != 200 {
				return nil, fmt.Errorf("fetch status %d", status)
			}
			return d, nil
		})
		if err != nil {
			IncrFetchErrors()
			return nil, err
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", targetURL, nil)
	if err != nil {
		IncrFetchErrors()
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgentChrome)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		return cfg.HTTPClient.Do(req)
	})
	if err != nil {
		IncrFetchErrors()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		IncrFetchErrors()
		return nil, fmt.Errorf("fetch status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 512*1024))
}

var wsRe = regexp.MustCompile(`\s+`)

// PageText extracts the page title and readable text from posting HTML,
// stripping navigation chrome. Uses goquery for tree-based extraction with
// a regex fallback for unparseable markup.
func PageText(body []byte) (title, content string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return pageTextFallback(string(body))
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		doc.Find("meta[property=og:title]").Each(func(_ int, s *goquery.Selection) {
			if title == "" {
				title, _ = s.Attr("content")
			}
		})
	}

	removeSelectors := []string{
		"script", "style", "noscript", "iframe", "svg",
		"header", "footer", "nav", "aside",
	}
	doc.Find(strings.Join(removeSelectors, ", ")).Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	contentSel := doc.Find("article, main, .content, #content").First()
	if contentSel.Length() == 0 {
		contentSel = doc.Find("body")
	}

	content = wsRe.ReplaceAllString(strings.TrimSpace(contentSel.Text()), " ")
	if cfg.MaxContentChars > 0 && len(content) > cfg.MaxContentChars {
		content = content[:cfg.MaxContentChars] + "..."
	}
	return title, content
}

// pageTextFallback uses regex-based HTML stripping when goquery fails.
func pageTextFallback(html string) (title, content string) {
	titleRe := regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	if m := titleRe.FindStringSubmatch(html); len(m) > 1 {
		title = strings.TrimSpace(m[1])
	}

	for _, tag := range []string{"script", "style", "noscript", "header", "footer", "nav", "aside", "iframe"} {
		re := regexp.MustCompile(`(?is)<` + tag + `[^>]*>.*?</` + tag + `>`)
		html = re.ReplaceAllString(html, "")
	}

	content = CleanHTML(html)
	content = wsRe.ReplaceAllString(content, " ")
	if cfg.MaxContentChars > 0 && len(content) > cfg.MaxContentChars {
		content = content[:cfg.MaxContentChars] + "..."
	}
	return title, content
}

// DescriptionMarkdown converts a description HTML fragment to markdown for
// storage and downstream text extraction. Falls back to tag stripping when
// conversion fails.
func DescriptionMarkdown(descHTML string) string {
	md, err := htmltomarkdown.ConvertString(descHTML)
	if err != nil || strings.TrimSpace(md) == "" {
		return CleanHTML(descHTML)
	}
	return strings.TrimSpace(md)
}
