package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"opensea-orders/internal/core/config"
	"opensea-orders/internal/features/orders/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testContract = common.HexToAddress("0xABC0000000000000000000000000000000000aBc")

// newTestAdapter points an adapter at an httptest server running handler.
func newTestAdapter(t *testing.T, apiKey string, handler http.HandlerFunc) *OpenSeaAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	adapter, err := NewOpenSeaAdapter(config.OpenSeaConfig{
		APIKey:  apiKey,
		BaseURL: server.URL + "/api/v2",
	})
	require.NoError(t, err)
	return adapter
}

// TestOpenSeaAdapter_GetOrders_Success verifies query encoding and result order.
func TestOpenSeaAdapter_GetOrders_Success(t *testing.T) {
	mockResponse := `{
		"orders": [
			{"order_hash": "0x0000000000000000000000000000000000000000000000000000000000000001", "side": 1, "current_price": "100"},
			{"order_hash": "0x0000000000000000000000000000000000000000000000000000000000000002", "side": 1, "current_price": "200"},
			{"order_hash": "0x0000000000000000000000000000000000000000000000000000000000000003", "side": 1, "current_price": "300"}
		]
	}`

	adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/wyvern/v1/orders", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("side"))
		assert.Equal(t, "7", q.Get("token_id"))
		assert.Equal(t, "0xabc0000000000000000000000000000000000abc", q.Get("asset_contract_address"))
		assert.Equal(t, "3", q.Get("limit"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	})

	req := domain.OrderRequest{
		Side:            domain.OrderSideSell,
		TokenID:         "7",
		ContractAddress: testContract,
		Limit:           3,
	}
	orders, err := adapter.GetOrders(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i, want := range []string{"100", "200", "300"} {
		require.NotNil(t, orders[i].CurrentPrice)
		assert.Equal(t, want, orders[i].CurrentPrice.String())
		require.NotNil(t, orders[i].OrderHash)
		assert.Equal(t, int64(i+1), orders[i].OrderHash.Big().Int64())
	}

	// The request is not mutated.
	assert.Equal(t, 3, req.Limit)
}

// TestOpenSeaAdapter_GetOrders_Empty verifies that an empty list is not an error.
func TestOpenSeaAdapter_GetOrders_Empty(t *testing.T) {
	adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders": []}`))
	})

	orders, err := adapter.GetOrders(context.Background(), domain.NewOrderRequest(domain.OrderSideBuy, testContract, "1"))
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

// TestOpenSeaAdapter_GetOrder_ForcesLimit verifies limit=1 whatever the caller passed.
func TestOpenSeaAdapter_GetOrder_ForcesLimit(t *testing.T) {
	for _, limit := range []int{0, 1, 50, -3} {
		var gotLimit string
		adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
			gotLimit = r.URL.Query().Get("limit")
			w.Write([]byte(`{"orders": [{"side": 0, "id": 1}, {"side": 0, "id": 2}]}`))
		})

		req := domain.OrderRequest{Side: domain.OrderSideBuy, TokenID: "1", ContractAddress: testContract, Limit: limit}
		order, err := adapter.GetOrder(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, "1", gotLimit)
		assert.JSONEq(t, `{"side": 0, "id": 1}`, string(order.Raw()))
		assert.Equal(t, limit, req.Limit)
	}
}

// TestOpenSeaAdapter_GetOrder_NotFound verifies the not-found error carries the request.
func TestOpenSeaAdapter_GetOrder_NotFound(t *testing.T) {
	adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orders": []}`))
	})

	req := domain.OrderRequest{Side: domain.OrderSideSell, TokenID: "1", ContractAddress: testContract, Limit: 1}
	order, err := adapter.GetOrder(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	var notFound *domain.OrderNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, testContract, notFound.Contract)
	assert.Equal(t, "1", notFound.TokenID)
	assert.Contains(t, err.Error(), "0xabc0000000000000000000000000000000000abc")
}

// TestOpenSeaAdapter_GetOrderV2_Path verifies the path is built from the inputs verbatim.
func TestOpenSeaAdapter_GetOrderV2_Path(t *testing.T) {
	hash := common.HexToHash("0x5168ae982c8d0bd40267a318cf88c542b9e2dc1a8f73a655a20b987fc01f0cea")
	mockResponse := `{"order": {"order_hash": "0x5168ae982c8d0bd40267a318cf88c542b9e2dc1a8f73a655a20b987fc01f0cea", "protocol_address": "0x00000000000000adc04c56bf30ac9d3c0aaf14dc", "current_price": "42", "protocol_data": {"signature": null}}}`

	adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t,
			"/api/v2/orders/chain/ethereum/protocol/0x00000000000000adc04c56bf30ac9d3c0aaf14dc/0x5168ae982c8d0bd40267a318cf88c542b9e2dc1a8f73a655a20b987fc01f0cea",
			r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(mockResponse))
	})

	order, err := adapter.GetOrderV2(context.Background(), domain.OrderRequestV2{Chain: "ethereum", OrderHash: hash})

	require.NoError(t, err)
	require.NotNil(t, order)
	require.NotNil(t, order.OrderHash)
	assert.Equal(t, hash, *order.OrderHash)
	assert.Equal(t, domain.ProtocolAddress, *order.ProtocolAddress)
	assert.Equal(t, "42", order.CurrentPrice.String())
	assert.Contains(t, string(order.Raw()), `"protocol_data"`)
}

// TestOpenSeaAdapter_APIKeyHeader verifies the header is present on every call.
func TestOpenSeaAdapter_APIKeyHeader(t *testing.T) {
	var (
		mu   sync.Mutex
		keys []string
	)
	adapter := newTestAdapter(t, "secret-key", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		keys = append(keys, r.Header.Get("X-API-KEY"))
		mu.Unlock()
		if r.URL.Path == "/api/v2/wyvern/v1/orders" {
			w.Write([]byte(`{"orders": [{"side": 1}]}`))
			return
		}
		w.Write([]byte(`{"order": {}}`))
	})

	ctx := context.Background()
	req := domain.NewOrderRequest(domain.OrderSideSell, testContract, "1")

	_, err := adapter.GetOrders(ctx, req)
	require.NoError(t, err)
	_, err = adapter.GetOrder(ctx, req)
	require.NoError(t, err)
	_, err = adapter.GetOrderV2(ctx, domain.OrderRequestV2{Chain: "ethereum"})
	require.NoError(t, err)

	assert.Equal(t, []string{"secret-key", "secret-key", "secret-key"}, keys)
}

// TestOpenSeaAdapter_NoAPIKeyHeader verifies no header is sent without a key.
func TestOpenSeaAdapter_NoAPIKeyHeader(t *testing.T) {
	adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Api-Key"]
		assert.False(t, present)
		w.Write([]byte(`{"orders": []}`))
	})

	_, err := adapter.GetOrders(context.Background(), domain.NewOrderRequest(domain.OrderSideBuy, testContract, "1"))
	require.NoError(t, err)
}

// TestOpenSeaAdapter_MalformedJSON verifies decode failures never look like success.
func TestOpenSeaAdapter_MalformedJSON(t *testing.T) {
	bodies := map[string]string{
		"truncated":       `{"orders": [`,
		"not json":        `<html>oops</html>`,
		"missing field":   `{"detail": "throttled"}`,
		"null orders":     `{"orders": null}`,
		"wrong type":      `{"orders": {"a": 1}}`,
		"order not obj":   `{"orders": ["x"]}`,
		"bad typed field": `{"orders": [{"order_hash": 12}]}`,
		"trailing data":   `{"orders": []} {}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			req := domain.NewOrderRequest(domain.OrderSideBuy, testContract, "1")

			orders, err := adapter.GetOrders(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, orders)
			assert.ErrorIs(t, err, domain.ErrDecode)

			_, err = adapter.GetOrder(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrDecode)
			assert.NotErrorIs(t, err, domain.ErrOrderNotFound)
		})
	}
}

// TestOpenSeaAdapter_GetOrderV2_MalformedJSON verifies the v2 envelope is required.
func TestOpenSeaAdapter_GetOrderV2_MalformedJSON(t *testing.T) {
	for _, body := range []string{`{}`, `{"order": null}`, `{"order": [`, `[]`} {
		adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		order, err := adapter.GetOrderV2(context.Background(), domain.OrderRequestV2{Chain: "ethereum"})
		require.Error(t, err, body)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domain.ErrDecode, body)
	}
}

// TestOpenSeaAdapter_StatusError verifies non-2xx answers surface as APIError.
func TestOpenSeaAdapter_StatusError(t *testing.T) {
	adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors": ["Order not found"]}`))
	})

	_, err := adapter.GetOrderV2(context.Background(), domain.OrderRequestV2{Chain: "ethereum"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, `{"errors": ["Order not found"]}`, apiErr.Body)

	// v2 lookups have no not-found mapping of their own.
	assert.NotErrorIs(t, err, domain.ErrOrderNotFound)
}

// TestOpenSeaAdapter_TransportError verifies unreachable hosts surface as ErrTransport.
func TestOpenSeaAdapter_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	adapter, err := NewOpenSeaAdapter(config.OpenSeaConfig{BaseURL: baseURL})
	require.NoError(t, err)

	_, err = adapter.GetOrders(context.Background(), domain.NewOrderRequest(domain.OrderSideBuy, testContract, "1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.NotErrorIs(t, err, domain.ErrDecode)
}

// TestOpenSeaAdapter_ContextDeadline verifies caller deadlines bound the call.
func TestOpenSeaAdapter_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	adapter := newTestAdapter(t, "", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := adapter.GetOrderV2(ctx, domain.OrderRequestV2{Chain: "ethereum"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestNewOpenSeaAdapter_Errors verifies construction failures are returned, not panicked.
func TestNewOpenSeaAdapter_Errors(t *testing.T) {
	_, err := NewOpenSeaAdapter(config.OpenSeaConfig{RequireAPIKey: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENSEA_API_KEY")

	_, err = NewOpenSeaAdapter(config.OpenSeaConfig{APIKey: "bad\r\nkey"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value for header X-API-KEY")

	adapter, err := NewOpenSeaAdapter(config.OpenSeaConfig{})
	require.NoError(t, err)
	assert.Equal(t, domain.APIBaseURL, adapter.baseURL)

	adapter, err = NewOpenSeaAdapter(config.OpenSeaConfig{BaseURL: "http://mirror.local/api/v2/"})
	require.NoError(t, err)
	assert.Equal(t, "http://mirror.local/api/v2", adapter.baseURL)
}

func TestOrderQuery(t *testing.T) {
	q := orderQuery(domain.OrderRequest{
		Side:            domain.OrderSideBuy,
		TokenID:         "123456789012345678901234567890",
		ContractAddress: testContract,
		Limit:           20,
	})

	assert.Equal(t,
		"asset_contract_address=0xabc0000000000000000000000000000000000abc&limit=20&side=0&token_id=123456789012345678901234567890",
		q.Encode())
}
