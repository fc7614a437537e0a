package monitor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/aleister1102/pagewatch/internal/httpclient"
	"github.com/aleister1102/pagewatch/internal/notifier"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

// ErrElementNotFound is returned when a page has no element with the requested id.
var ErrElementNotFound = errors.New("element not found")

const (
	chunkWindow = 300
	chunkLength = 30
)

// Fetcher downloads a target page and extracts the monitored element.
type Fetcher struct {
	client        *httpclient.HTTPClient
	notifications *notifier.NotificationHelper
	logger        zerolog.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client *httpclient.HTTPClient, notifications *notifier.NotificationHelper, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		client:        client,
		notifications: notifications,
		logger:        logger.With().Str("component", "Fetcher").Logger(),
	}
}

// FetchContent returns the outer HTML of the first element whose id equals
// elementID, trimmed of surrounding whitespace. A failed request raises a
// fetch alert before the error is returned.
func (f *Fetcher) FetchContent(ctx context.Context, target config.Target, elementID string) (string, error) {
	result, err := f.client.FetchContent(ctx, target.URL)
	if err != nil {
		f.logger.Error().Err(err).Str("url", target.URL).Msg("Error fetching content")
		f.notifications.SendFetchFailed(target.Name)
		return "", common.WrapErrorf(err, "fetching %s", target.URL)
	}
	f.logger.Debug().Str("url", target.URL).Int("status_code", result.HTTPStatusCode).Msg("Successfully fetched content")

	page, err := DecodeBody(result.Content, result.ContentType)
	if err != nil {
		f.logger.Error().Err(err).Str("url", target.URL).Str("content_type", result.ContentType).Msg("Failed to decode page")
		return "", err
	}

	content, text, err := ExtractElement(page, elementID)
	if err != nil {
		if errors.Is(err, ErrElementNotFound) {
			f.logger.Warn().Str("url", target.URL).Str("element_id", elementID).Msg("Element not found in the content")
		} else {
			f.logger.Error().Err(err).Str("url", target.URL).Msg("Failed to parse page")
		}
		return "", err
	}

	first, last := textChunks(text)
	f.logger.Debug().Str("url", target.URL).Str("chunk", first).Msg("First chunk")
	f.logger.Debug().Str("url", target.URL).Str("chunk", last).Msg("Last chunk")

	return content, nil
}

// DecodeBody converts a response body to UTF-8 using the charset declared in
// contentType, a byte order mark or a <meta> tag. Bodies that are already
// valid UTF-8 and carry no explicit charset are returned unchanged.
func DecodeBody(body []byte, contentType string) ([]byte, error) {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(body)) {
		return body, nil
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, common.WrapErrorf(err, "decoding %s body", name)
	}
	return decoded, nil
}

// ExtractElement parses page as HTML and returns the outer HTML and the text
// of the first element, in document order, whose id attribute equals elementID.
func ExtractElement(page []byte, elementID string) (outerHTML, text string, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", "", common.WrapError(err, "parsing HTML")
	}

	sel := doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return id == elementID
	}).First()
	if sel.Length() == 0 {
		return "", "", ErrElementNotFound
	}

	outerHTML, err = goquery.OuterHtml(sel)
	if err != nil {
		return "", "", common.WrapError(err, "rendering element")
	}
	return strings.TrimSpace(outerHTML), sel.Text(), nil
}

// textChunks returns the first and last 30 characters of the element text,
// each taken from a 300 character window with whitespace trimmed at every step.
func textChunks(text string) (first, last string) {
	runes := []rune(strings.TrimSpace(text))

	head := runes
	if len(head) > chunkWindow {
		head = head[:chunkWindow]
	}
	head = []rune(strings.TrimSpace(string(head)))
	if len(head) > chunkLength {
		head = head[:chunkLength]
	}

	tail := runes
	if len(tail) > chunkWindow {
		tail = tail[len(tail)-chunkWindow:]
	}
	tail = []rune(strings.TrimSpace(string(tail)))
	if len(tail) > chunkLength {
		tail = tail[len(tail)-chunkLength:]
	}

	return strings.TrimSpace(string(head)), strings.TrimSpace(string(tail))
}
