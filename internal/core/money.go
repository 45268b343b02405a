// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts typed by users and
// formatting them as US-dollar currency for display.
package core

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount a user can enter.
var MaxAmount = decimal.New(1, 15)

const maxAmountLen = 32

// ParseAmount converts user-typed text into a positive decimal amount.
//
// Surrounding whitespace is ignored. Exponent notation, inputs longer than
// maxAmountLen, values above MaxAmount, anything decimal.NewFromString
// rejects, zero and negative values all return ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("12.50") -> 12.5, nil
//	ParseAmount(" 3 ")   -> 3, nil
//	ParseAmount("-3")    -> 0, ErrInvalidAmount
//	ParseAmount("abc")   -> 0, ErrInvalidAmount
//	ParseAmount("1e4")   -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxAmountLen || strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() || d.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatUSD renders an amount as "$1,234.50". The argument is not modified.
func FormatUSD(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}
	rounded := amount.Round(2)
	fixed := rounded.StringFixed(2)
	cents := fixed[strings.LastIndexByte(fixed, '.')+1:]
	s := "$" + humanize.BigComma(rounded.Truncate(0).BigInt()) + "." + cents
	if neg {
		return "-" + s
	}
	return s
}

// FormatFixed2 renders an amount with exactly two decimal places and no
// currency symbol, e.g. "12.50".
func FormatFixed2(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
