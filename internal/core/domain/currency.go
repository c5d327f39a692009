package domain

// Currency is a supported currency code. The set is closed: the shop only
// trades the currencies listed here.
type Currency string

const (
	MMK Currency = "MMK"
	THB Currency = "THB"
	USD Currency = "USD"
	SGD Currency = "SGD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
	CNY Currency = "CNY"
	AED Currency = "AED"
	MYR Currency = "MYR"
)

// BaseCurrency is the currency every rate is quoted against. Its rate is 1 by
// definition and is never stored in the rate table; the rate service is the
// single place that enforces this.
const BaseCurrency = MMK

var supportedCurrencies = []Currency{MMK, THB, USD, SGD, EUR, JPY, CNY, AED, MYR}

// SupportedCurrencies returns the closed set of tradable currencies.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsSupportedCurrency reports whether code is one of the tradable currencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range supportedCurrencies {
		if string(c) == code {
			return true
		}
	}
	return false
}
