package reconcile

import (
	"fmt"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// Credit приводит документ users/{id}/lessonPackages/{id} к LessonCredit
func Credit(id, userID string, raw Record) (domain.LessonCredit, error) {
	if len(raw) == 0 {
		return domain.LessonCredit{}, ErrEmptyRecord
	}
	if id == "" {
		id = stringField(raw, "id")
	}
	if userID == "" {
		userID = stringField(raw, "userId")
	}

	c := domain.LessonCredit{
		ID:           id,
		UserID:       userID,
		CreditType:   domain.NormalizeCreditType(domain.CreditType(stringField(raw, "creditType"))),
		TotalCredits: intField(raw, "totalCredits"),
		UsedCredits:  intField(raw, "usedCredits"),
	}

	if c.CreditType == "" {
		return domain.LessonCredit{}, fmt.Errorf("%w: creditType", ErrMissingField)
	}

	exp, ok := firstTime(raw, "expirationDate")
	if !ok {
		return domain.LessonCredit{}, fmt.Errorf("%w: expirationDate", ErrMissingField)
	}
	c.ExpirationDate = exp

	if t, ok := firstTime(raw, "purchaseDate"); ok {
		c.PurchaseDate = t
	}
	if tx := stringField(raw, "transactionId"); tx != "" {
		c.TransactionID = &tx
	}

	return c, nil
}

// CreditDocument документ кредита для записи
func CreditDocument(c domain.LessonCredit) Record {
	doc := Record{
		"userId":         c.UserID,
		"creditType":     string(c.CreditType),
		"totalCredits":   c.TotalCredits,
		"usedCredits":    c.UsedCredits,
		"purchaseDate":   c.PurchaseDate,
		"expirationDate": c.ExpirationDate,
	}
	if c.TransactionID != nil {
		doc["transactionId"] = *c.TransactionID
	}
	return doc
}
