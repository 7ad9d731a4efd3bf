package lib

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const defaultClientTimeout = 10 * time.Second

var DefaultHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConnsPerHost: 10,
	},
	Timeout: defaultClientTimeout,
}

var BuildVersion = "dev"

var UserAgentString = "weverse-go/" + BuildVersion + " +https://github.com/Anson-Quek/weverse-go"

type requestDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// StatusError is returned by DecodeJSONFromRequest for a non-200 response.
// The body is kept so callers can extract a structured error message.
type StatusError struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(
		"unexpected status code %d from %s, response: %s",
		e.StatusCode,
		e.URL,
		TruncateString(string(e.Body), 256),
	)
}

// DecodeJSONFromRequest executes the request and unmarshals the response body.
// A non-200 response is returned as a *StatusError.
func DecodeJSONFromRequest[T any](client requestDoer, request *http.Request) (T, error) {
	var result T

	response, err := client.Do(request)
	if err != nil {
		return result, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return result, err
	}

	if response.StatusCode != http.StatusOK {
		return result, &StatusError{
			StatusCode: response.StatusCode,
			URL:        request.URL.String(),
			Body:       body,
		}
	}

	err = json.Unmarshal(body, &result)
	if err != nil {
		return result, err
	}

	return result, nil
}

// TruncateString shortens s to at most maxLen runes.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// TextFromHTML extracts the concatenated text content of an HTML fragment.
// Returns the input unchanged when it cannot be parsed.
func TextFromHTML(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return htmlStr
	}
	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)
	return strings.TrimSpace(b.String())
}

// ImageURLsFromHTML returns the src attribute of every img tag in an HTML fragment.
func ImageURLsFromHTML(htmlStr string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil
	}

	var urls []string
	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		if src, exists := s.Attr("src"); exists && src != "" {
			urls = append(urls, src)
		}
	})
	return urls
}
