package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// APIBaseURL is the root of the OpenSea REST API.
	APIBaseURL = "https://api.opensea.io/api/v2"
	// SiteHostMainnet is the public marketplace site.
	SiteHostMainnet = "https://opensea.io"
	// SiteHostRinkeby is the retired testnet marketplace site.
	SiteHostRinkeby = "https://rinkeby.opensea.io"

	// ProtocolString names the settlement protocol used by v2 orders.
	ProtocolString = "seaport"

	ProtocolAddressHex      = "0x00000000000000adc04c56bf30ac9d3c0aaf14dc"
	ProtocolFeeRecipientHex = "0x5b3256965e7c3cf26e11fcaf296dfc8807c01073"
	OpenSeaAddressHex       = "0x7be8076f4ea4a4ad08075c2508e481d6c946d12b"

	// APIKeyHeader carries the static API key.
	APIKeyHeader = "X-API-KEY"

	// DefaultOrderLimit is the page size used when a caller does not pick one.
	DefaultOrderLimit = 20
)

var (
	// ProtocolAddress is the Seaport contract that settles v2 orders.
	ProtocolAddress = mustAddress(ProtocolAddressHex)
	// ProtocolFeeRecipient receives the marketplace protocol fee.
	ProtocolFeeRecipient = mustAddress(ProtocolFeeRecipientHex)
	// OpenSeaAddress is the legacy marketplace address.
	OpenSeaAddress = mustAddress(OpenSeaAddressHex)
)

func mustAddress(s string) common.Address {
	if !common.IsHexAddress(s) {
		panic(fmt.Sprintf("invalid address constant %q", s))
	}
	return common.HexToAddress(s)
}
