package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// AppointmentSource records where a booking came from. Informational only.
type AppointmentSource string

const (
	SourceWebsite  AppointmentSource = "website"
	SourceWhatsApp AppointmentSource = "whatsapp"
	SourcePhone    AppointmentSource = "phone"
	SourceDirect   AppointmentSource = "direct"
)

// Valid reports whether s is one of the known sources.
func (s AppointmentSource) Valid() bool {
	switch s {
	case SourceWebsite, SourceWhatsApp, SourcePhone, SourceDirect:
		return true
	}
	return false
}

// Notification locales supported by the salon.
const (
	LanguageArabic  = "ar"
	LanguageTurkish = "tr"
)

// ValidLanguage reports whether lang is a supported notification locale.
func ValidLanguage(lang string) bool {
	return lang == LanguageArabic || lang == LanguageTurkish
}

// Service catalogue. The appointment stores the service as a plain string,
// but unknown values are rejected at the boundary.
const (
	ServiceHaircut  = "haircut"
	ServiceColoring = "coloring"
	ServiceStyling  = "styling"
	ServiceBridal   = "bridal"
	ServiceMakeup   = "makeup"
	ServiceHaircare = "haircare"
)

// ServiceCatalogue lists every bookable service.
var ServiceCatalogue = []string{
	ServiceHaircut,
	ServiceColoring,
	ServiceStyling,
	ServiceBridal,
	ServiceMakeup,
	ServiceHaircare,
}

// ValidService reports whether service is in the catalogue.
func ValidService(service string) bool {
	for _, s := range ServiceCatalogue {
		if s == service {
			return true
		}
	}
	return false
}

// Appointment represents a single booking with the salon.
type Appointment struct {
	ID        string            `bson:"id" json:"id"`                                   // UUID assigned at creation
	Name      string            `bson:"name" json:"name"`                               // Client name
	Phone     string            `bson:"phone" json:"phone"`                             // Client phone number
	Service   string            `bson:"service" json:"service"`                         // One of the service catalogue entries
	Date      string            `bson:"date" json:"date"`                               // Calendar date in "YYYY-MM-DD" format
	Time      string            `bson:"time" json:"time"`                               // Half-hour slot in "HH:MM" format
	Status    AppointmentStatus `bson:"status" json:"status"`                           // pending, confirmed or cancelled
	Language  string            `bson:"language" json:"language"`                       // Notification locale ("ar" or "tr")
	Source    AppointmentSource `bson:"source" json:"source"`                           // Booking provenance
	CreatedBy string            `bson:"created_by,omitempty" json:"createdBy,omitempty"` // "admin" for manually added bookings
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time        `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// Active reports whether the appointment still occupies its slot.
// Cancelled appointments never block anything.
func (a Appointment) Active() bool {
	return a.Status != StatusCancelled
}

// AppointmentInput is the payload for creating an appointment, shared by the
// client and admin paths. Language and Source are optional; the coordinator
// fills in path-specific defaults.
type AppointmentInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Language string `json:"language,omitempty"`
	Source   string `json:"source,omitempty"`
}
