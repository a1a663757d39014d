package pricing

import (
	"math"
	"strings"
	"testing"
)

func TestDetectContinent(t *testing.T) {
	cases := map[string]Continent{
		"America/New_York":  Americas,
		"Canada/Eastern":    Americas,
		"Europe/Amsterdam":  Europe,
		"GMT":               Europe,
		"UTC":               Europe,
		"Asia/Tokyo":        Asia,
		"Asia/Shanghai":     Asia,
		"Australia/Sydney":  Oceania,
		"Pacific/Auckland":  Oceania,
		"Africa/Lagos":      Africa,
		"":                  Americas,
		"Mars/Olympus_Mons": Americas,
	}

	for timezone, want := range cases {
		if got := DetectContinent(timezone); got != want {
			t.Errorf("DetectContinent(%q) = %s, want %s", timezone, got, want)
		}
	}
}

func TestDetectCurrency(t *testing.T) {
	cases := map[string]Currency{
		"America/Sao_Paulo": BRL,
		"America/Fortaleza": BRL,
		"America/New_York":  USD,
		"Europe/Paris":      EUR,
		"Asia/Tokyo":        JPY,
		"Australia/Sydney":  AUD,
		"Africa/Cairo":      USD,
		"":                  USD,
	}

	for timezone, want := range cases {
		if got := DetectCurrency(timezone); got != want {
			t.Errorf("DetectCurrency(%q) = %s, want %s", timezone, got, want)
		}
	}
}

func TestConvert(t *testing.T) {
	cases := []struct {
		target Currency
		want   float64
	}{
		{BRL, 14.99},
		{USD, 2.998},
		{EUR, 2.6982},
		{JPY, 449.7},
	}

	for _, tc := range cases {
		got := Convert(14.99, tc.target)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Convert(14.99, %s) = %v, want %v", tc.target, got, tc.want)
		}
	}

	// Unknown currency keeps the BRL price.
	if got := Convert(14.99, Currency("XXX")); got != 14.99 {
		t.Errorf("Convert to unknown currency = %v, want 14.99", got)
	}
}

func TestFormat(t *testing.T) {
	// Exact separators vary by locale, so check symbol and magnitude.
	usd := Format(14.99, USD)
	if !strings.HasPrefix(usd, "$") || !strings.Contains(usd, "3") {
		t.Errorf("unexpected USD formatting: %q", usd)
	}

	brl := Format(14.99, BRL)
	if !strings.HasPrefix(brl, "R$") {
		t.Errorf("unexpected BRL formatting: %q", brl)
	}

	// JPY carries no decimal places.
	jpy := Format(14.99, JPY)
	if strings.ContainsAny(jpy, ".,") {
		t.Errorf("expected no decimals for JPY, got %q", jpy)
	}
	if !strings.HasPrefix(jpy, "¥") {
		t.Errorf("unexpected JPY formatting: %q", jpy)
	}
}

func TestParseCurrency(t *testing.T) {
	if c, ok := ParseCurrency(" usd "); !ok || c != USD {
		t.Errorf("ParseCurrency(usd) = %s, %v", c, ok)
	}
	if _, ok := ParseCurrency("doubloons"); ok {
		t.Error("expected doubloons to be rejected")
	}
}
