package lib

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDecodeJSONFromRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"NewJeans","count":5}`))
	}))
	defer server.Close()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	result, err := DecodeJSONFromRequest[payload](server.Client(), req)
	if err != nil {
		t.Fatalf("DecodeJSONFromRequest() error = %v", err)
	}
	if result.Name != "NewJeans" || result.Count != 5 {
		t.Errorf("DecodeJSONFromRequest() = %+v", result)
	}
}

func TestDecodeJSONFromRequestStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"upstream down"}`))
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	_, err = DecodeJSONFromRequest[map[string]string](server.Client(), req)
	if err == nil {
		t.Fatal("DecodeJSONFromRequest() error = nil, want *StatusError")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("DecodeJSONFromRequest() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, http.StatusBadGateway)
	}
	if string(statusErr.Body) != `{"message":"upstream down"}` {
		t.Errorf("Body = %q", statusErr.Body)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "shorter than limit", input: "hello", maxLen: 10, want: "hello"},
		{name: "exactly at limit", input: "hello", maxLen: 5, want: "hello"},
		{name: "truncated", input: "hello world", maxLen: 5, want: "hello"},
		{name: "multibyte runes", input: "뉴진스 컴백", maxLen: 3, want: "뉴진스"},
		{name: "empty", input: "", maxLen: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTextFromHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "hello", want: "hello"},
		{name: "nested tags", input: "<p>hello <b>world</b></p>", want: "hello world"},
		{name: "surrounding whitespace trimmed", input: "<div>  spaced  </div>", want: "spaced"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextFromHTML(tt.input); got != tt.want {
				t.Errorf("TextFromHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestImageURLsFromHTML(t *testing.T) {
	input := `<p>setlist</p><img src="https://cdn.example.com/a.jpg"><img alt="no src"><img src="https://cdn.example.com/b.jpg">`

	urls := ImageURLsFromHTML(input)
	if len(urls) != 2 {
		t.Fatalf("got %d URLs, want 2: %v", len(urls), urls)
	}
	if urls[0] != "https://cdn.example.com/a.jpg" || urls[1] != "https://cdn.example.com/b.jpg" {
		t.Errorf("ImageURLsFromHTML() = %v", urls)
	}
}
