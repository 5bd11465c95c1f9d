package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"opensea-orders/internal/core/config"
	"opensea-orders/internal/core/httpclient"
	"opensea-orders/internal/features/orders/domain"
)

// OpenSeaAdapter implements the OrderProvider interface using the OpenSea REST API.
// It holds no mutable state and is safe for concurrent use.
type OpenSeaAdapter struct {
	// client is the HTTP client used for API requests; it carries the API key header.
	client *http.Client
	// baseURL is the API root without a trailing slash.
	baseURL string
}

// NewOpenSeaAdapter creates a new instance of OpenSeaAdapter.
// It fails when the key is required but missing, or cannot be sent as a header.
func NewOpenSeaAdapter(cfg config.OpenSeaConfig, opts ...httpclient.Option) (*OpenSeaAdapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientOpts := append([]httpclient.Option(nil), opts...)
	if cfg.APIKey != "" {
		clientOpts = append(clientOpts, httpclient.WithHeader(domain.APIKeyHeader, cfg.APIKey))
	}

	// No client timeout: deadlines come from the caller's context.
	client, err := httpclient.NewClient(0, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build opensea client: %w", err)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = domain.APIBaseURL
	}

	return &OpenSeaAdapter{
		client:  client,
		baseURL: baseURL,
	}, nil
}

// GetOrders fetches legacy orders for a token and returns them in API order.
func (a *OpenSeaAdapter) GetOrders(ctx context.Context, req domain.OrderRequest) ([]domain.Order, error) {
	endpoint := fmt.Sprintf("%s/wyvern/v1/orders?%s", a.baseURL, orderQuery(req).Encode())

	var resp domain.OrderResponse
	if err := a.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.Orders == nil {
		return nil, fmt.Errorf("%w: response has no orders field", domain.ErrDecode)
	}

	return resp.Orders, nil
}

// GetOrder fetches the first legacy order for a token. The request limit is
// always 1; an empty result is an OrderNotFoundError.
func (a *OpenSeaAdapter) GetOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	req.Limit = 1

	orders, err := a.GetOrders(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, &domain.OrderNotFoundError{
			Contract: req.ContractAddress,
			TokenID:  req.TokenID,
		}
	}

	return &orders[0], nil
}

// GetOrderV2 fetches a Seaport order by chain and order hash.
func (a *OpenSeaAdapter) GetOrderV2(ctx context.Context, req domain.OrderRequestV2) (*domain.OrderV2, error) {
	endpoint := fmt.Sprintf("%s/orders/chain/%s/protocol/%s/%s",
		a.baseURL, req.Chain, domain.ProtocolAddressHex, req.OrderHash.Hex())

	var resp domain.OrderResponseV2
	if err := a.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.Order == nil {
		return nil, fmt.Errorf("%w: response has no order field", domain.ErrDecode)
	}

	return resp.Order, nil
}

// get performs a single GET and decodes a 2xx JSON body into out.
func (a *OpenSeaAdapter) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, domain.MaxErrorBody))
		return &domain.APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", domain.ErrTransport, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", domain.ErrDecode, err)
	}

	return nil
}

// orderQuery encodes a legacy request. The contract is sent as lowercase hex.
func orderQuery(req domain.OrderRequest) url.Values {
	q := url.Values{}
	q.Set("side", strconv.Itoa(int(req.Side)))
	q.Set("token_id", req.TokenID)
	q.Set("asset_contract_address", strings.ToLower(req.ContractAddress.Hex()))
	q.Set("limit", strconv.Itoa(req.Limit))
	return q
}
