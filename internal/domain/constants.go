package domain

import "time"

// Booking policy
const (
	// BookingCutoff minimum lead time to book a private lesson
	BookingCutoff = 5 * time.Hour
	// CancellationCutoff minimum lead time to cancel a lesson or class registration
	CancellationCutoff = 24 * time.Hour
	// DefaultGrantValidity expiration of admin-granted credits, counted from the grant date
	DefaultGrantValidity = 1 // years
)

// Document store collections
const (
	CollectionUsers          = "users"
	CollectionLessonPackages = "lessonPackages" // users/{id}/lessonPackages
	CollectionDocuments      = "documents"      // users/{id}/documents
	CollectionBookings       = "bookings"
	CollectionTrainers       = "trainers"
	CollectionSchedules      = "schedules" // trainers/{id}/schedules
	CollectionClasses        = "classes"
	CollectionParticipants   = "participants" // classes/{id}/participants
)

// Waiver document
const (
	DocumentTypeLiabilityWaiver = "liability_waiver"
	CurrentWaiverVersion        = "2024-01"
)

// Time format constants
const (
	DateFormat = "2006-01-02"
)

// UserPackagesPath returns users/{userID}/lessonPackages
func UserPackagesPath(userID string) string {
	return CollectionUsers + "/" + userID + "/" + CollectionLessonPackages
}

// UserDocumentsPath returns users/{userID}/documents
func UserDocumentsPath(userID string) string {
	return CollectionUsers + "/" + userID + "/" + CollectionDocuments
}

// TrainerSchedulesPath returns trainers/{trainerID}/schedules
func TrainerSchedulesPath(trainerID string) string {
	return CollectionTrainers + "/" + trainerID + "/" + CollectionSchedules
}

// ClassParticipantsPath returns classes/{classID}/participants
func ClassParticipantsPath(classID string) string {
	return CollectionClasses + "/" + classID + "/" + CollectionParticipants
}
