package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

const etherDecimals = 18

// ParseEther converts a decimal ether amount (e.g. "0.1") into wei.
// Negative amounts and amounts with more than 18 fractional digits are rejected.
func ParseEther(value string) (*big.Int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidPrice)
	}
	if strings.HasPrefix(v, "-") {
		return nil, fmt.Errorf("%w: negative amount %s", ErrInvalidPrice, value)
	}
	v = strings.TrimPrefix(v, "+")

	intPart, fracPart, _ := strings.Cut(v, ".")
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, value)
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return nil, fmt.Errorf("%w: %s is not a decimal number", ErrInvalidPrice, value)
	}
	if len(fracPart) > etherDecimals {
		return nil, fmt.Errorf("%w: %s has more than %d decimals", ErrInvalidPrice, value, etherDecimals)
	}

	if intPart == "" {
		intPart = "0"
	}
	fracPart += strings.Repeat("0", etherDecimals-len(fracPart))

	wei, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, value)
	}

	return wei, nil
}

// ParsePositiveEther is ParseEther restricted to amounts greater than zero
func ParsePositiveEther(value string) (*big.Int, error) {
	wei, err := ParseEther(value)
	if err != nil {
		return nil, err
	}
	if wei.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidPrice)
	}
	return wei, nil
}

// FormatEther renders a wei amount as a decimal ether string.
// Trailing zeros are trimmed but at least one fractional digit is kept ("1.0", "0.1").
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}

	abs := new(big.Int).Abs(wei)
	unit := new(big.Int).SetUint64(params.Ether)
	whole, rem := new(big.Int).QuoRem(abs, unit, new(big.Int))

	frac := rem.String()
	frac = strings.Repeat("0", etherDecimals-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		frac = "0"
	}

	sign := ""
	if wei.Sign() < 0 {
		sign = "-"
	}

	return sign + whole.String() + "." + frac
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
