package domain

import "github.com/shopspring/decimal"

// Price list in cents
const (
	PriceSingleCents       int64 = 8000
	PriceTwoAthleteCents   int64 = 14000
	PriceThreeAthleteCents int64 = 18000
	PriceClassPassCents    int64 = 4500
)

// PriceCents returns the price of one credit of the given type.
// Legacy aliases are priced as single credits.
func PriceCents(t CreditType) (int64, bool) {
	switch NormalizeCreditType(t) {
	case CreditSingle:
		return PriceSingleCents, true
	case CreditTwoAthlete:
		return PriceTwoAthleteCents, true
	case CreditThreeAthlete:
		return PriceThreeAthleteCents, true
	case CreditClassPass:
		return PriceClassPassCents, true
	default:
		return 0, false
	}
}

// FormatUSD renders cents as "$80.00"
func FormatUSD(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}

// PriceListEntry is one row of the public price list
type PriceListEntry struct {
	CreditType CreditType
	Cents      int64
	Display    string
}

// PriceList returns all purchasable credit types in display order
func PriceList() []PriceListEntry {
	types := []CreditType{CreditSingle, CreditTwoAthlete, CreditThreeAthlete, CreditClassPass}
	list := make([]PriceListEntry, 0, len(types))
	for _, t := range types {
		cents, _ := PriceCents(t)
		list = append(list, PriceListEntry{CreditType: t, Cents: cents, Display: FormatUSD(cents)})
	}
	return list
}
