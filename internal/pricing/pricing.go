// Package pricing converts plan prices from the BRL base into the currency
// implied by the user's IANA timezone.
package pricing

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Currency string

const (
	BRL Currency = "BRL"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	JPY Currency = "JPY"
	CNY Currency = "CNY"
)

type Continent string

const (
	Americas Continent = "americas"
	Europe   Continent = "europe"
	Asia     Continent = "asia"
	Oceania  Continent = "oceania"
	Africa   Continent = "africa"
)

// CurrencyInfo holds the conversion rate from BRL and formatting locale.
type CurrencyInfo struct {
	Code   Currency
	Symbol string
	Rate   float64 // 1 BRL in this currency
	Locale language.Tag
}

// Approximate rates, BRL base. Updated by hand.
var currencyRates = map[Currency]CurrencyInfo{
	BRL: {Code: BRL, Symbol: "R$", Rate: 1, Locale: language.MustParse("pt-BR")},
	USD: {Code: USD, Symbol: "$", Rate: 0.20, Locale: language.MustParse("en-US")},
	EUR: {Code: EUR, Symbol: "€", Rate: 0.18, Locale: language.MustParse("de-DE")},
	GBP: {Code: GBP, Symbol: "£", Rate: 0.16, Locale: language.MustParse("en-GB")},
	CAD: {Code: CAD, Symbol: "C$", Rate: 0.27, Locale: language.MustParse("en-CA")},
	AUD: {Code: AUD, Symbol: "A$", Rate: 0.30, Locale: language.MustParse("en-AU")},
	JPY: {Code: JPY, Symbol: "¥", Rate: 30, Locale: language.MustParse("ja-JP")},
	CNY: {Code: CNY, Symbol: "¥", Rate: 1.40, Locale: language.MustParse("zh-CN")},
}

var continentCurrency = map[Continent]Currency{
	Americas: USD,
	Europe:   EUR,
	Asia:     JPY,
	Oceania:  AUD,
	Africa:   USD,
}

// Brazilian zones always price in BRL regardless of continent.
var brazilTimeZones = []string{
	"America/Sao_Paulo",
	"America/Fortaleza",
}

// DetectContinent maps an IANA timezone name to a continent.
// Unknown or empty zones default to the Americas.
func DetectContinent(timezone string) Continent {
	switch {
	case strings.Contains(timezone, "America/") || strings.Contains(timezone, "Canada/"):
		return Americas
	case strings.Contains(timezone, "Europe/") || strings.Contains(timezone, "GMT") || strings.Contains(timezone, "UTC"):
		return Europe
	case strings.Contains(timezone, "Asia/") || strings.Contains(timezone, "Tokyo") ||
		strings.Contains(timezone, "Shanghai") || strings.Contains(timezone, "Hong_Kong"):
		return Asia
	case strings.Contains(timezone, "Australia/") || strings.Contains(timezone, "Pacific/Auckland") ||
		strings.Contains(timezone, "Pacific/Fiji"):
		return Oceania
	case strings.Contains(timezone, "Africa/"):
		return Africa
	default:
		return Americas
	}
}

// DetectCurrency maps a timezone to the currency users there pay in.
func DetectCurrency(timezone string) Currency {
	for _, zone := range brazilTimeZones {
		if strings.Contains(timezone, zone) {
			return BRL
		}
	}
	return continentCurrency[DetectContinent(timezone)]
}

// Convert converts a BRL price to the target currency.
func Convert(priceBRL float64, target Currency) float64 {
	info, ok := currencyRates[target]
	if !ok {
		info = currencyRates[BRL]
	}
	return priceBRL * info.Rate
}

// Format converts a BRL price and renders it with the target currency's
// symbol and locale conventions. JPY carries no decimal places.
func Format(priceBRL float64, target Currency) string {
	info, ok := currencyRates[target]
	if !ok {
		info = currencyRates[BRL]
	}

	amount := priceBRL * info.Rate
	scale := 2
	if target == JPY {
		scale = 0
	}

	p := message.NewPrinter(info.Locale)
	return p.Sprintf("%s%v", info.Symbol, number.Decimal(amount, number.Scale(scale)))
}

// Info returns the currency table entry, defaulting to BRL for unknown codes.
func Info(target Currency) CurrencyInfo {
	if info, ok := currencyRates[target]; ok {
		return info
	}
	return currencyRates[BRL]
}

// ParseCurrency validates a client-supplied currency override.
func ParseCurrency(code string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	_, ok := currencyRates[c]
	return c, ok
}
