package postcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"measurement-intake-service/internal/platform/obs"
	"measurement-intake-service/internal/ports"
)

var (
	// ErrInvalidInput marks a postcode or house number that fails local
	// validation; no request is made for these.
	ErrInvalidInput = errors.New("invalid postcode or house number")
	// ErrNotFound marks a postcode/house number pair unknown to the API.
	ErrNotFound = errors.New("address not found")
)

// Pattern for a normalized Dutch postcode, e.g. "2161DV".
var postcodePattern = regexp.MustCompile(`^[1-9][0-9]{3}[A-Z]{2}$`)

// Client resolves Dutch postcode and house number pairs to street and city
// using the postcodeapi.nu lookup endpoint.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey string) *Client {
	return &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.postcodeapi.nu/v3",
	}
}

// Normalize strips whitespace and uppercases a postcode.
func Normalize(postcode string) string {
	return strings.ToUpper(strings.Join(strings.Fields(postcode), ""))
}

// Valid reports whether a normalized postcode has the Dutch format.
func Valid(postcode string) bool {
	return postcodePattern.MatchString(postcode)
}

type lookupResponse struct {
	Street string `json:"street"`
	City   struct {
		Label string `json:"label"`
	} `json:"city"`
}

func (c *Client) Lookup(ctx context.Context, postcode, houseNumber string) (_ ports.AddressResult, err error) {
	defer obs.Time(ctx, "postcode.Lookup")(&err)

	pc := Normalize(postcode)
	houseNumber = strings.TrimSpace(houseNumber)
	if !Valid(pc) || houseNumber == "" {
		return ports.AddressResult{}, ErrInvalidInput
	}

	endpoint := fmt.Sprintf("%s/lookup/%s/%s", c.baseURL, pc, url.PathEscape(houseNumber))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.AddressResult{}, fmt.Errorf("lookup postcode: create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.AddressResult{}, fmt.Errorf("lookup postcode %s/%s: %w", pc, houseNumber, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.AddressResult{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return ports.AddressResult{}, fmt.Errorf("lookup postcode %s/%s: unexpected status %d", pc, houseNumber, resp.StatusCode)
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.AddressResult{}, fmt.Errorf("lookup postcode: decode response: %w", err)
	}

	return ports.AddressResult{Street: decoded.Street, City: decoded.City.Label}, nil
}
