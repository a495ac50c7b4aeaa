package tearsheet

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
)

// Fetching end-of-day prices from EODHD.com, and converting them into
// return series. This is the data-acquisition collaborator of the
// metrics engine: it only produces Series, it never computes metrics.

const eodhdAPIKeyEnv = "EODHD_API_KEY"

var eodhdAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key used to fetch prices from EODHD.com.\n If missing it is read from the environment variable \""+eodhdAPIKeyEnv+"\". You can get one at https://eodhd.com/")

func eodhdAPIKey() string {
	if *eodhdAPIFlag == "" {
		*eodhdAPIFlag = os.Getenv(eodhdAPIKeyEnv)
	}
	return *eodhdAPIFlag
}

// FetchPrices retrieves the adjusted close prices of a ticker
// (e.g. "AAPL.US") for the given date range. The returned series holds
// prices, not returns; see FetchReturns.
func FetchPrices(ticker string, rng Range) (*Series, error) {
	key := eodhdAPIKey()
	if key == "" {
		return nil, fmt.Errorf("missing EODHD API key: set -eodhd-api-key or %s", eodhdAPIKeyEnv)
	}

	q := url.Values{}
	q.Set("api_token", key)
	q.Set("fmt", "json")
	q.Set("period", "d")
	q.Set("from", rng.From.String())
	q.Set("to", rng.To.String())
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?%s", url.PathEscape(ticker), q.Encode())

	var jobj any
	if err := jwget(dailyCachedClient(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("fetching prices for %q: %w", ticker, err)
	}

	dates, err := jsonpathStrings(jobj, "$[*].date")
	if err != nil {
		return nil, fmt.Errorf("parsing prices for %q: %w", ticker, err)
	}
	closes, err := jsonpathFloats(jobj, "$[*].adjusted_close")
	if err != nil {
		return nil, fmt.Errorf("parsing prices for %q: %w", ticker, err)
	}
	if len(dates) != len(closes) {
		return nil, fmt.Errorf("inconsistent response for %q: %d dates for %d closes", ticker, len(dates), len(closes))
	}

	prices := NewSeries()
	for i, str := range dates {
		on, err := ParseDate(str)
		if err != nil {
			return nil, fmt.Errorf("parsing prices for %q: %w", ticker, err)
		}
		prices.Append(on, closes[i])
	}
	return prices, nil
}

// FetchReturns retrieves the daily return series of a ticker for the
// given date range.
func FetchReturns(ticker string, rng Range) (*Series, error) {
	prices, err := FetchPrices(ticker, rng)
	if err != nil {
		return nil, err
	}
	return ToReturns(prices), nil
}

// jsonpathStrings extracts a list of strings from a parsed JSON document.
func jsonpathStrings(jobj any, path string) ([]string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("jsonpath %q: not a list but %T", path, jval)
	}
	out := make([]string, 0, len(jlist))
	for _, v := range jlist {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("jsonpath %q: not a string but %T", path, v)
		}
		out = append(out, s)
	}
	return out, nil
}

// jsonpathFloats extracts a list of numbers from a parsed JSON document.
func jsonpathFloats(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("jsonpath %q: not a list but %T", path, jval)
	}
	out := make([]float64, 0, len(jlist))
	for _, v := range jlist {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("jsonpath %q: not a number but %T", path, v)
		}
		out = append(out, f)
	}
	return out, nil
}

// diskCache implements a simple disk cache for HTTP responses. The cache
// key includes today's date, so entries expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// dailyCachedClient returns an HTTP client whose responses expire daily.
func dailyCachedClient() *http.Client {
	return &http.Client{Transport: &diskCache{http.DefaultTransport}}
}

// jwget performs an HTTP GET request and unmarshals the JSON response
// into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}
