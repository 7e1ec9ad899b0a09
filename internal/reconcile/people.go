package reconcile

import (
	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// Trainer приводит документ trainers/{id}
func Trainer(id string, raw Record) (domain.Trainer, error) {
	if len(raw) == 0 {
		return domain.Trainer{}, ErrEmptyRecord
	}
	return domain.Trainer{
		ID:          id,
		Name:        stringField(raw, "name"),
		Bio:         stringField(raw, "bio"),
		Specialties: stringSlice(raw, "specialties"),
		ImageURL:    stringField(raw, "imageURL"),
	}, nil
}

// Profile приводит документ users/{id}
func Profile(id string, raw Record) (domain.UserProfile, error) {
	if len(raw) == 0 {
		return domain.UserProfile{}, ErrEmptyRecord
	}
	p := domain.UserProfile{
		ID:        id,
		Email:     stringField(raw, "email"),
		FirstName: stringField(raw, "firstName"),
		LastName:  stringField(raw, "lastName"),
		Phone:     stringField(raw, "phone"),
		Role:      stringField(raw, "role"),
	}
	if t, ok := firstTime(raw, "createdAt"); ok {
		p.CreatedAt = t
	}
	return p, nil
}

// ProfileDocument поля профиля, которые пользователь может менять сам.
// role не пишется: её выставляют только администраторы бэкенда.
func ProfileDocument(p domain.UserProfile) Record {
	return Record{
		"email":     p.Email,
		"firstName": p.FirstName,
		"lastName":  p.LastName,
		"phone":     p.Phone,
	}
}

// SignedDocument приводит документ users/{id}/documents/{id}
func SignedDocument(id, userID string, raw Record) (domain.SignedDocument, error) {
	if len(raw) == 0 {
		return domain.SignedDocument{}, ErrEmptyRecord
	}
	d := domain.SignedDocument{
		ID:            id,
		UserID:        userID,
		DocumentType:  stringField(raw, "documentType"),
		Version:       stringField(raw, "version"),
		SignerName:    stringField(raw, "signerName"),
		ParticipantOf: stringField(raw, "participantName"),
	}
	if t, ok := firstTime(raw, "signedAt", "createdAt"); ok {
		d.SignedAt = t
	}
	return d, nil
}

// SignedDocumentDocument документ подписи для записи
func SignedDocumentDocument(d domain.SignedDocument) Record {
	doc := Record{
		"documentType": d.DocumentType,
		"version":      d.Version,
		"signerName":   d.SignerName,
		"signedAt":     d.SignedAt,
	}
	if d.ParticipantOf != "" {
		doc["participantName"] = d.ParticipantOf
	}
	return doc
}

// PaymentMethod приводит элемент списка getPaymentMethods
func PaymentMethod(raw Record) (domain.PaymentMethod, bool) {
	id := stringField(raw, "id")
	if id == "" {
		return domain.PaymentMethod{}, false
	}
	return domain.PaymentMethod{
		ID:       id,
		Brand:    stringField(raw, "brand"),
		Last4:    stringField(raw, "last4"),
		ExpMonth: intField(raw, "expMonth"),
		ExpYear:  intField(raw, "expYear"),
	}, true
}
