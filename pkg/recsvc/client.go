package recsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the external ranking service. Any failure is reported to the
// caller, which falls back to local recommendation logic.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type rankRequest struct {
	FavoriteCuisines []string `json:"favoriteCuisines"`
	OrderHistory     []uint   `json:"orderHistory"`
}

func (c *Client) Rank(ctx context.Context, cuisines []string, orderHistory []uint) ([]uint, error) {
	body, err := json.Marshal(rankRequest{
		FavoriteCuisines: cuisines,
		OrderHistory:     orderHistory,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ranking service returned %d", res.StatusCode)
	}

	var ids []uint
	if err := json.NewDecoder(res.Body).Decode(&ids); err != nil {
		return nil, err
	}
	return ids, nil
}
