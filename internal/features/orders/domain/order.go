package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// OrderSide is the Wyvern side of an order: 0 for buy offers, 1 for sell listings.
type OrderSide int

const (
	// OrderSideBuy selects offers.
	OrderSideBuy OrderSide = 0
	// OrderSideSell selects listings.
	OrderSideSell OrderSide = 1
)

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "buy"
	case OrderSideSell:
		return "sell"
	default:
		return "side(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseOrderSide accepts "buy", "sell", "0" or "1", case-insensitively.
func ParseOrderSide(s string) (OrderSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "0":
		return OrderSideBuy, nil
	case "sell", "1":
		return OrderSideSell, nil
	default:
		return 0, fmt.Errorf("invalid order side %q", s)
	}
}

// ParseAddress parses a 20 byte hex address, with or without the 0x prefix.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// ParseOrderHash parses a 0x-prefixed 32 byte hex string.
func ParseOrderHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid order hash %q: %w", s, err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid order hash %q: want %d bytes, got %d", s, common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

// OrderRequest selects legacy orders for one token of a contract.
type OrderRequest struct {
	Side            OrderSide
	TokenID         string
	ContractAddress common.Address
	Limit           int
}

// NewOrderRequest builds a request with the default limit.
func NewOrderRequest(side OrderSide, contract common.Address, tokenID string) OrderRequest {
	return OrderRequest{
		Side:            side,
		TokenID:         tokenID,
		ContractAddress: contract,
		Limit:           DefaultOrderLimit,
	}
}

// OrderRequestV2 addresses a single Seaport order.
type OrderRequestV2 struct {
	// Chain is the API chain slug, e.g. "ethereum".
	Chain     string
	OrderHash common.Hash
}

// Order is a legacy order book record. The API owns its schema: the full
// object is kept verbatim and re-marshals unchanged, while a few common
// fields are decoded for convenience.
type Order struct {
	OrderHash    *common.Hash     `json:"order_hash,omitempty"`
	Side         *OrderSide       `json:"side,omitempty"`
	CurrentPrice *decimal.Decimal `json:"current_price,omitempty"`

	raw json.RawMessage
}

// Raw returns the order exactly as the API sent it.
func (o Order) Raw() json.RawMessage {
	return o.raw
}

func (o *Order) UnmarshalJSON(b []byte) error {
	type fields Order
	var f fields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*o = Order(f)
	o.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	if o.raw != nil {
		return o.raw, nil
	}
	type fields Order
	return json.Marshal(fields(o))
}

// OrderV2 is a Seaport order record, kept verbatim like Order.
type OrderV2 struct {
	OrderHash       *common.Hash     `json:"order_hash,omitempty"`
	ProtocolAddress *common.Address  `json:"protocol_address,omitempty"`
	Side            string           `json:"side,omitempty"`
	OrderType       string           `json:"order_type,omitempty"`
	CurrentPrice    *decimal.Decimal `json:"current_price,omitempty"`

	raw json.RawMessage
}

// Raw returns the order exactly as the API sent it.
func (o OrderV2) Raw() json.RawMessage {
	return o.raw
}

func (o *OrderV2) UnmarshalJSON(b []byte) error {
	type fields OrderV2
	var f fields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*o = OrderV2(f)
	o.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (o OrderV2) MarshalJSON() ([]byte, error) {
	if o.raw != nil {
		return o.raw, nil
	}
	type fields OrderV2
	return json.Marshal(fields(o))
}

// OrderResponse is the envelope of the legacy order list endpoint.
type OrderResponse struct {
	Orders []Order `json:"orders"`
}

// OrderResponseV2 is the envelope of the single order endpoint.
type OrderResponseV2 struct {
	Order *OrderV2 `json:"order"`
}
