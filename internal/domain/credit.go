package domain

import "time"

// CreditType is the kind of entitlement a lesson credit grants
type CreditType string

const (
	CreditSingle       CreditType = "single"
	CreditTwoAthlete   CreditType = "two_athlete"
	CreditThreeAthlete CreditType = "three_athlete"
	CreditClassPass    CreditType = "class_pass"
)

// Legacy names still present on older packages; all belong to the single/private family
const (
	creditLegacyPrivate  CreditType = "private"
	creditLegacyFivePack CreditType = "five_pack"
	creditLegacyTenPack  CreditType = "ten_pack"
)

// NormalizeCreditType maps legacy aliases onto the current type names.
// Unknown values are returned unchanged.
func NormalizeCreditType(t CreditType) CreditType {
	switch t {
	case creditLegacyPrivate, creditLegacyFivePack, creditLegacyTenPack:
		return CreditSingle
	default:
		return t
	}
}

// IsKnown reports whether the type (after normalization) is one we sell
func (t CreditType) IsKnown() bool {
	switch NormalizeCreditType(t) {
	case CreditSingle, CreditTwoAthlete, CreditThreeAthlete, CreditClassPass:
		return true
	default:
		return false
	}
}

// IsClassPass reports whether the credit is spent on group classes
func (t CreditType) IsClassPass() bool {
	return NormalizeCreditType(t) == CreditClassPass
}

// LessonCredit represents a purchased bundle of lesson entitlements (a "package").
// UsedCredits is only ever changed by the backend.
type LessonCredit struct {
	ID             string
	UserID         string
	CreditType     CreditType
	TotalCredits   int
	UsedCredits    int
	PurchaseDate   time.Time
	ExpirationDate time.Time
	TransactionID  *string
}

// Remaining returns unused credits, never negative
func (c *LessonCredit) Remaining() int {
	r := c.TotalCredits - c.UsedCredits
	if r < 0 {
		return 0
	}
	return r
}

// IsExpired reports whether the credit expired before now
func (c *LessonCredit) IsExpired(now time.Time) bool {
	return c.ExpirationDate.Before(now)
}

// IsUsable returns true if the credit has remaining entitlements and has not expired
func (c *LessonCredit) IsUsable(now time.Time) bool {
	return c.Remaining() > 0 && !c.IsExpired(now)
}
