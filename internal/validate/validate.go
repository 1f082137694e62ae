// Package validate implements the input checks performed before any
// request is built. Each helper either accepts the argument or returns a
// *errors.ValidationError naming the offending field; no helper performs
// network I/O or cryptographic verification.
package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/furylabs/fury-go/pkg/constants"
	"github.com/furylabs/fury-go/pkg/errors"
)

// Address checks that a wallet or token address is a non-empty string.
// Base58 shape is not verified; the server owns address semantics.
func Address(field, address string) error {
	if strings.TrimSpace(address) == "" {
		return errors.NewValidationError(field, address, "address must be a non-empty string")
	}
	return nil
}

// AddressList checks that a wallet address list is non-empty, contains no
// empty entries, and contains no duplicates.
func AddressList(field string, addresses []string) error {
	if len(addresses) == 0 {
		return errors.NewValidationError(field, addresses, "at least one address is required")
	}
	seen := make(map[string]struct{}, len(addresses))
	for i, addr := range addresses {
		if strings.TrimSpace(addr) == "" {
			return errors.NewValidationError(field, addr, fmt.Sprintf("address at index %d is empty", i))
		}
		if _, dup := seen[addr]; dup {
			return errors.NewValidationError(field, addr, fmt.Sprintf("duplicate address %s", addr))
		}
		seen[addr] = struct{}{}
	}
	return nil
}

// Percentage checks that p lies in (0, 100].
func Percentage(field string, p float64) error {
	if p <= 0 || p > constants.MaxPercentage {
		return errors.NewValidationError(field, p, "percentage must be greater than 0 and at most 100")
	}
	return nil
}

// SolAmount checks that a SOL amount is strictly positive.
func SolAmount(field string, amount float64) error {
	if amount <= 0 {
		return errors.NewValidationError(field, amount, "SOL amount must be positive")
	}
	return nil
}

// PercentageString checks that a percentage supplied as a decimal
// string (the wire form of affiliate fees) parses and lies in (0, 100].
func PercentageString(field, p string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(p))
	if err != nil {
		return errors.NewValidationError(field, p, "percentage is not a valid decimal")
	}
	f, _ := d.Float64()
	return Percentage(field, f)
}

// SlippageBps checks that a slippage tolerance in basis points is a
// non-negative integer no greater than constants.MaxSlippageBps.
func SlippageBps(field string, bps int64) error {
	if bps < 0 {
		return errors.NewValidationError(field, bps, "slippage must not be negative")
	}
	if bps > constants.MaxSlippageBps {
		return errors.NewValidationError(field, bps,
			fmt.Sprintf("slippage must not exceed %d basis points", constants.MaxSlippageBps))
	}
	return nil
}

// Amount checks that a string-typed token amount parses as a positive
// decimal. Amounts travel as strings on the wire to avoid float precision
// loss, so the check parses rather than converts.
func Amount(field, amount string) error {
	if strings.TrimSpace(amount) == "" {
		return errors.NewValidationError(field, amount, "amount must be a non-empty decimal string")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return errors.NewValidationError(field, amount, "amount is not a valid decimal")
	}
	if d.Sign() <= 0 {
		return errors.NewValidationError(field, amount, "amount must be positive")
	}
	return nil
}

// MatchingLengths checks that two paired slices have the same length,
// e.g. per-wallet amounts against wallet addresses.
func MatchingLengths(field, otherField string, length, otherLength int) error {
	if length != otherLength {
		return errors.NewValidationError(field, length,
			fmt.Sprintf("length %d does not match %s length %d", length, otherField, otherLength))
	}
	return nil
}
