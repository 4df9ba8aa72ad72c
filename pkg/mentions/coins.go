// Package mentions counts cryptocurrency ticker and name mentions across a
// thread's comments, using the CoinGecko listing as the alias universe.
package mentions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shanelightowler/crypto-daily-mentions/pkg/caching"
)

const (
	// CoinListURL is CoinGecko's full coin listing endpoint.
	CoinListURL = "https://api.coingecko.com/api/v3/coins/list?include_platform=false"

	coinCacheTTL = 7 * 24 * time.Hour
)

// Coin is one entry of the CoinGecko listing.
type Coin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CoinSource fetches the coin listing through a file cache. The listing is
// tens of thousands of entries and changes slowly, so a week-old cache is
// fine.
type CoinSource struct {
	URL    string
	Cache  *caching.Cache
	Client *http.Client
}

// NewCoinSource builds a source with the public listing URL, caching under
// the given directory.
func NewCoinSource(cacheDir string) *CoinSource {
	return &CoinSource{
		URL:    CoinListURL,
		Cache:  caching.NewCache(cacheDir, coinCacheTTL),
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the coin list, preferring a fresh cache over the network.
func (s *CoinSource) Fetch(ctx context.Context) ([]Coin, error) {
	if data, ok := s.Cache.Get(s.URL); ok {
		var coins []Coin
		if err := json.Unmarshal(data, &coins); err == nil {
			return coins, nil
		}
		// Corrupt cache entry; fall through to the network.
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build coin list request: %w", err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coin list fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coin list fetch returned status %d", resp.StatusCode)
	}

	var coins []Coin
	if err := json.NewDecoder(resp.Body).Decode(&coins); err != nil {
		return nil, fmt.Errorf("failed to decode coin list: %w", err)
	}

	if data, err := json.Marshal(coins); err == nil {
		// Cache write failures are non-fatal; the next run refetches.
		_ = s.Cache.Set(s.URL, data)
	}
	return coins, nil
}
