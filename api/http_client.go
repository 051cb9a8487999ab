// api/http_client.go
package api

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"time"
)

// HTTPClient holds a base URL and the underlying HTTP client configuration
// shared by the outbound API clients.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new HTTPClient with default settings.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewHTTPClientWithTimeout creates an HTTPClient with an explicit timeout,
// for callers with tighter deadlines than the default.
func NewHTTPClientWithTimeout(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request makes a JSON HTTP request to the API and decodes the response.
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	resBody, err := c.do(method, endpoint, headers, body, "application/json")
	if err != nil {
		return err
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}
	return nil
}

// RequestXML makes an HTTP request and decodes an XML response. The
// public-data feeds answer XML regardless of Accept headers.
func (c *HTTPClient) RequestXML(method, endpoint string, headers map[string]string, response interface{}) error {
	resBody, err := c.do(method, endpoint, headers, nil, "application/xml")
	if err != nil {
		return err
	}

	if response != nil {
		return xml.Unmarshal(resBody, response)
	}
	return nil
}

func (c *HTTPClient) do(method, endpoint string, headers map[string]string, body interface{}, contentType string) ([]byte, error) {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, errors.New("unexpected status code: " + res.Status)
	}

	return resBody, nil
}
