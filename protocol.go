package fury

import (
	"strings"

	"github.com/furylabs/fury-go/pkg/errors"
)

// Protocol identifies the on-chain trading venue used to execute a buy
// or sell. The set of valid values is defined by the FURY API; "auto"
// lets the server pick the venue.
type Protocol string

// Supported trading protocols.
const (
	ProtocolRaydium  Protocol = "raydium"
	ProtocolJupiter  Protocol = "jupiter"
	ProtocolPumpfun  Protocol = "pumpfun"
	ProtocolMoonshot Protocol = "moonshot"
	ProtocolPumpswap Protocol = "pumpswap"
	ProtocolAuto     Protocol = "auto"
)

// Protocols returns the list of supported protocol values.
func Protocols() []Protocol {
	return []Protocol{
		ProtocolRaydium,
		ProtocolJupiter,
		ProtocolPumpfun,
		ProtocolMoonshot,
		ProtocolPumpswap,
		ProtocolAuto,
	}
}

// ParseProtocol normalizes and validates a protocol value against the
// allow-list. An empty value resolves to ProtocolAuto; anything outside
// the allow-list is a ValidationError.
func ParseProtocol(value string) (Protocol, error) {
	normalized := Protocol(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return ProtocolAuto, nil
	}
	for _, p := range Protocols() {
		if normalized == p {
			return p, nil
		}
	}
	return "", errors.NewValidationError("protocol", value,
		"must be one of: raydium, jupiter, pumpfun, moonshot, pumpswap, auto")
}
