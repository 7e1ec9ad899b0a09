package domain

import "time"

// RoleAdmin marks users allowed to manage classes and grant credits
const RoleAdmin = "admin"

// Trainer is a descriptive, read-mostly record
type Trainer struct {
	ID          string
	Name        string
	Bio         string
	Specialties []string
	ImageURL    string
}

// UserProfile is the users/{id} document
type UserProfile struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      string
	CreatedAt time.Time
}

// IsAdmin returns true for admin accounts
func (u *UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns first and last name joined by a space
func (u *UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// SignedDocument is a liability waiver signature stored under users/{id}/documents
type SignedDocument struct {
	ID            string
	UserID        string
	DocumentType  string
	Version       string
	SignerName    string
	SignedAt      time.Time
	ParticipantOf string // optional athlete name when a guardian signs
}
