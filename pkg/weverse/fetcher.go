package weverse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Anson-Quek/weverse-go/pkg/lib"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Fetcher is the low-level authenticated transport for the wevweb API.
// It exchanges credentials for a bearer token against the account API and
// silently refreshes the token once when a request comes back 401.
type Fetcher struct {
	email      string
	password   string
	httpClient *http.Client
	logger     *zerolog.Logger

	apiBaseURL    string
	accountAPIURL string

	mu          sync.Mutex
	accessToken string
}

func NewFetcher(email, password string, logger *zerolog.Logger) *Fetcher {
	return &Fetcher{
		email:         email,
		password:      password,
		httpClient:    lib.DefaultHTTPClient,
		logger:        logger,
		apiBaseURL:    defaultAPIBaseURL,
		accountAPIURL: defaultAccountAPIURL,
	}
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Login exchanges the configured credentials for a fresh access token.
func (f *Fetcher) Login(ctx context.Context) error {
	payload, err := json.Marshal(map[string]string{
		"email":    f.email,
		"password": f.password,
	})
	if err != nil {
		return fmt.Errorf("marshal login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.accountAPIURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", lib.UserAgentString)
	req.Header.Set("X-Acc-App-Secret", accountAppSecret)
	req.Header.Set("X-Acc-App-Version", "3.3.4")
	req.Header.Set("X-Acc-Language", "en")
	req.Header.Set("X-Acc-Service-Id", "weverse")
	req.Header.Set("X-Acc-Trace-Id", uuid.NewString())

	login, err := lib.DecodeJSONFromRequest[loginResponse](f.httpClient, req)
	if err != nil {
		var statusErr *lib.StatusError
		if errors.As(err, &statusErr) {
			var errResp errorResponse
			// A non-JSON error body still produces a useful LoginError.
			_ = json.Unmarshal(statusErr.Body, &errResp)
			return &LoginError{StatusCode: statusErr.StatusCode, Message: errResp.Message}
		}
		return fmt.Errorf("execute login request: %w", err)
	}

	f.mu.Lock()
	f.accessToken = login.AccessToken
	f.mu.Unlock()

	f.logger.Debug().Msg("Logged in to Weverse")
	return nil
}

// Get fetches a signed endpoint path and returns the raw response body.
func (f *Fetcher) Get(ctx context.Context, path string) ([]byte, error) {
	raw, err := fetchJSON[json.RawMessage](ctx, f, path)
	return []byte(raw), err
}

func (f *Fetcher) token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accessToken
}

// fetchJSON fetches a signed endpoint path and decodes the response body.
// A 401 triggers exactly one token refresh and retry before the failure
// surfaces to the caller.
func fetchJSON[T any](ctx context.Context, f *Fetcher, path string) (T, error) {
	result, err := doFetch[T](ctx, f, path)
	if err == nil || !errors.Is(err, ErrTokenExpired) {
		return result, err
	}

	f.logger.Warn().
		Str("path", path).
		Msg("Access token expired, refreshing")

	if err := f.Login(ctx); err != nil {
		var zero T
		return zero, fmt.Errorf("refresh access token: %w", err)
	}

	return doFetch[T](ctx, f, path)
}

func doFetch[T any](ctx context.Context, f *Fetcher, path string) (T, error) {
	var zero T

	url := f.apiBaseURL + signPath(path, time.Now())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Referer", defaultRefererURL)
	req.Header.Set("User-Agent", lib.UserAgentString)
	req.Header.Set("Authorization", "Bearer "+f.token())

	result, err := lib.DecodeJSONFromRequest[T](f.httpClient, req)
	if err != nil {
		var statusErr *lib.StatusError
		if errors.As(err, &statusErr) {
			var errResp errorResponse
			_ = json.Unmarshal(statusErr.Body, &errResp)
			return zero, newAPIError(url, statusErr.StatusCode, errResp.Message)
		}
		return zero, fmt.Errorf("execute request: %w", err)
	}

	return result, nil
}
