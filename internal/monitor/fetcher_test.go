package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/aleister1102/pagewatch/internal/httpclient"
	"github.com/aleister1102/pagewatch/internal/notifier"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, rn *notifier.RecordingNotifier) *Fetcher {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).WithTimeout(2 * time.Second).Build()
	require.NoError(t, err)
	nh := notifier.NewNotificationHelper(rn, config.NewDefaultNotificationConfig(), zerolog.Nop())
	return NewFetcher(client, nh, zerolog.Nop())
}

func TestExtractElement(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		wantOuter string
		wantText  string
		wantErr   error
	}{
		{
			name:      "simple div",
			page:      `<html><body><div id="content">Hello</div></body></html>`,
			wantOuter: `<div id="content">Hello</div>`,
			wantText:  "Hello",
		},
		{
			name:      "first match wins",
			page:      `<p id="content">one</p><p id="content">two</p>`,
			wantOuter: `<p id="content">one</p>`,
			wantText:  "one",
		},
		{
			name:      "nested element keeps children",
			page:      `<section><main id="content"><h1>T</h1> <p>body</p></main></section>`,
			wantOuter: `<main id="content"><h1>T</h1> <p>body</p></main>`,
			wantText:  "T body",
		},
		{
			name:    "class is not id",
			page:    `<div class="content">x</div>`,
			wantErr: ErrElementNotFound,
		},
		{
			name:    "empty page",
			page:    "",
			wantErr: ErrElementNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outer, text, err := ExtractElement([]byte(tt.page), "content")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOuter, outer)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestTextChunks(t *testing.T) {
	first, last := textChunks("  short text  ")
	assert.Equal(t, "short text", first)
	assert.Equal(t, "short text", last)

	long := strings.Repeat("a", 40) + strings.Repeat("b", 400) + strings.Repeat("c", 40)
	first, last = textChunks(long)
	assert.Equal(t, strings.Repeat("a", 30), first)
	assert.Equal(t, strings.Repeat("c", 30), last)
}

func TestFetcher_FetchContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>\n  <div id=\"content\">v1</div>\n</body></html>"))
	}))
	defer server.Close()

	rn := notifier.NewRecordingNotifier()
	content, err := newTestFetcher(t, rn).FetchContent(context.Background(), config.Target{Name: "Ex", URL: server.URL}, "content")

	require.NoError(t, err)
	assert.Equal(t, `<div id="content">v1</div>`, content)
	assert.Empty(t, rn.Alerts())
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		contentType string
		want        string
	}{
		{"declared latin-1", []byte("caf\xe9"), "text/html; charset=iso-8859-1", "café"},
		{"meta tag latin-1", []byte(`<meta charset="iso-8859-1"><p>caf` + "\xe9</p>"), "text/html", `<meta charset="iso-8859-1"><p>café</p>`},
		{"utf-8 without charset", []byte("café"), "text/html", "café"},
		{"declared utf-8", []byte("café"), "text/html; charset=utf-8", "café"},
		{"no content type", []byte("plain"), "", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBody(tt.body, tt.contentType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.True(t, utf8.Valid(got))
		})
	}
}

func TestFetcher_DecodesDeclaredCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte("<html><body><div id=\"content\">caf\xe9</div></body></html>"))
	}))
	defer server.Close()

	rn := notifier.NewRecordingNotifier()
	content, err := newTestFetcher(t, rn).FetchContent(context.Background(), config.Target{Name: "Ex", URL: server.URL}, "content")

	require.NoError(t, err)
	assert.Equal(t, `<div id="content">café</div>`, content)
	assert.True(t, utf8.Valid([]byte(content)))
	assert.Equal(t, Fingerprint(`<div id="content">café</div>`), Fingerprint(content))
}

func TestFetcher_MissingElementDoesNotRaiseFetchAlert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><div id=\"other\">v1</div></body></html>"))
	}))
	defer server.Close()

	rn := notifier.NewRecordingNotifier()
	_, err := newTestFetcher(t, rn).FetchContent(context.Background(), config.Target{Name: "Ex", URL: server.URL}, "content")

	assert.ErrorIs(t, err, ErrElementNotFound)
	assert.Empty(t, rn.Alerts())
}

func TestFetcher_HTTPErrorRaisesFetchAlert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	rn := notifier.NewRecordingNotifier()
	_, err := newTestFetcher(t, rn).FetchContent(context.Background(), config.Target{Name: "Ex", URL: server.URL}, "content")

	var httpErr *common.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, []string{"Unable to fetch content from Ex: will try again later"}, rn.Messages())
}

func TestFetcher_NetworkErrorRaisesFetchAlert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	rn := notifier.NewRecordingNotifier()
	_, err := newTestFetcher(t, rn).FetchContent(context.Background(), config.Target{Name: "Ex", URL: url}, "content")

	assert.True(t, common.IsNetworkError(err))
	assert.Equal(t, []string{"Unable to fetch content from Ex: will try again later"}, rn.Messages())
}
