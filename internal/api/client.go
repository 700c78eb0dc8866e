package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// TokenProvider hands the client the current bearer credential. The
// session owns storage; the client only reads.
type TokenProvider interface {
	Token() (string, bool)
}

type Client struct {
	baseURL     string
	fileBaseURL string
	tokens      TokenProvider
	httpClient  *http.Client
}

func NewClient(baseURL, fileBaseURL string, tokens TokenProvider) *Client {
	return &Client{
		baseURL:     ensureTrailingSlash(baseURL),
		fileBaseURL: ensureTrailingSlash(fileBaseURL),
		tokens:      tokens,
		httpClient:  &http.Client{},
	}
}

// Do issues one request against the API root. path is relative and may
// carry a query string. body is JSON-marshaled when non-nil; the response
// body is decoded into out when non-nil. Every failure comes back as
// *Error so callers need not branch on transport vs. application errors.
func (c *Client) Do(ctx context.Context, method, path string, body any, requiresAuth bool, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			slog.Info(err.Error())
			return NewError(KindUnknownFailure, "unable to encode request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		slog.Info(err.Error())
		return NewError(KindUnknownFailure, "unable to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.authorize(req, requiresAuth); err != nil {
		return err
	}

	return c.send(req, out)
}

// Upload issues one multipart request against the API root, sending a
// single file plus extra form fields. Auth is always required.
func (c *Client) Upload(ctx context.Context, path, fieldName, fileName string, file []byte, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		slog.Info(err.Error())
		return NewError(KindUnknownFailure, "unable to build multipart body")
	}
	if _, err := part.Write(file); err != nil {
		slog.Info(err.Error())
		return NewError(KindUnknownFailure, "unable to build multipart body")
	}
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			slog.Info(err.Error())
			return NewError(KindUnknownFailure, "unable to build multipart body")
		}
	}
	if err := writer.Close(); err != nil {
		slog.Info(err.Error())
		return NewError(KindUnknownFailure, "unable to build multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		slog.Info(err.Error())
		return NewError(KindUnknownFailure, "unable to build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := c.authorize(req, true); err != nil {
		return err
	}

	return c.send(req, out)
}

// FileURL resolves server-relative media paths against the static-file root.
func (c *Client) FileURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.fileBaseURL + strings.TrimPrefix(path, "/")
}

// authorize attaches the bearer credential. A missing credential fails
// before any network round-trip.
func (c *Client) authorize(req *http.Request, requiresAuth bool) error {
	if !requiresAuth {
		return nil
	}
	token, ok := c.tokens.Token()
	if !ok {
		return NewError(KindUnauthenticated, "no authentication token found")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return NewError(KindNetworkFailure, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Info(err.Error())
		return NewError(KindNetworkFailure, "unable to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			slog.Info(err.Error())
			return NewError(KindServerError, "malformed response body")
		}
	}
	return nil
}

// serverError digs the human-readable message and optional code out of
// whatever error envelope the server used.
func serverError(status int, body []byte) *Error {
	message := http.StatusText(status)
	for _, key := range []string{"message", "error", "detail"} {
		if v := gjson.GetBytes(body, key); v.Exists() && v.String() != "" {
			message = v.String()
			break
		}
	}
	e := NewError(KindServerError, message)
	if code := gjson.GetBytes(body, "code"); code.Exists() {
		e.Code = code.String()
	}
	return e
}

func ensureTrailingSlash(u string) string {
	if u == "" || strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
