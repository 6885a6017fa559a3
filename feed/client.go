// Package feed registers worksheets and reads and edits cells over the
// spreadsheet service's Atom feeds.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// DefaultBaseURL is the feed endpoint of the hosted spreadsheet service.
const DefaultBaseURL = "https://spreadsheets.google.com/feeds"

// Client issues authenticated feed requests. The HTTP client supplied by the
// caller is responsible for authentication, transport-level retry and error
// status interpretation. A Client performs at most one remote query per call
// and holds no state across calls.
type Client struct {
	http  *http.Client
	base  string
	debug bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the feed endpoint (used in tests).
func WithBaseURL(base string) Option {
	return func(c *Client) { c.base = strings.TrimSuffix(base, "/") }
}

// WithDebug enables request logging.
func WithDebug(enabled bool) Option {
	return func(c *Client) { c.debug = enabled }
}

// NewClient creates a feed client on top of an authenticated HTTP client.
func NewClient(authenticated *http.Client, opts ...Option) *Client {
	c := Client{
		http: authenticated,
		base: DefaultBaseURL,
	}

	if c.http == nil {
		c.http = http.DefaultClient
	}

	for _, opt := range opts {
		opt(&c)
	}

	return &c
}

// get performs an authenticated GET and verifies that the response is an Atom
// feed. A non-feed content type is interpreted as a permission/publication
// problem, with the title of the returned HTML page (if any) included in the
// error for guidance.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	u := endpoint
	if len(query) > 0 {
		u = endpoint + "?" + query.Encode()
	}

	if c.debug {
		debugf("GET %s", u)
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("feed request failed (%w)", err)
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading feed response (%w)", err)
	}

	mediatype, _, _ := mime.ParseMediaType(response.Header.Get("Content-Type"))
	if !strings.Contains(mediatype, "atom") && !strings.Contains(mediatype, "xml") {
		return nil, &PermissionError{
			StatusCode:  response.StatusCode,
			ContentType: mediatype,
			Title:       htmlTitle(body),
		}
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed request returned %s", response.Status)
	}

	return body, nil
}

// htmlTitle extracts the <title> text of an HTML error page, if any.
func htmlTitle(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	title := ""

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "title" && node.FirstChild != nil {
			title = strings.TrimSpace(node.FirstChild.Data)
			return
		}

		for child := node.FirstChild; child != nil && title == ""; child = child.NextSibling {
			walk(child)
		}
	}

	walk(doc)

	return title
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
