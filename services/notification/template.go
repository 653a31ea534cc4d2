package notification

import (
	"fmt"
	"strings"
	"time"

	"salonbook/models"
)

// Localized display names for the notification text. The appointment's
// language tag selects the locale and has no other behavioral effect.

var serviceNames = map[string]map[string]string{
	models.LanguageArabic: {
		models.ServiceHaircut:  "قص شعر",
		models.ServiceColoring: "صبغة",
		models.ServiceStyling:  "تصفيف",
		models.ServiceBridal:   "عروس",
		models.ServiceMakeup:   "مكياج",
		models.ServiceHaircare: "عناية بالشعر",
	},
	models.LanguageTurkish: {
		models.ServiceHaircut:  "Saç Kesimi",
		models.ServiceColoring: "Saç Boyası",
		models.ServiceStyling:  "Saç Şekillendirme",
		models.ServiceBridal:   "Gelin Saçı",
		models.ServiceMakeup:   "Makyaj",
		models.ServiceHaircare: "Saç Bakımı",
	},
}

var sourceNames = map[string]map[models.AppointmentSource]string{
	models.LanguageArabic: {
		models.SourceWebsite:  "الموقع الإلكتروني",
		models.SourceWhatsApp: "واتساب",
		models.SourcePhone:    "الهاتف",
		models.SourceDirect:   "مباشر",
	},
	models.LanguageTurkish: {
		models.SourceWebsite:  "Website",
		models.SourceWhatsApp: "WhatsApp",
		models.SourcePhone:    "Telefon",
		models.SourceDirect:   "Doğrudan",
	},
}

var statusNames = map[string]map[models.AppointmentStatus]string{
	models.LanguageArabic: {
		models.StatusPending:   "في الانتظار",
		models.StatusConfirmed: "مؤكد",
		models.StatusCancelled: "ملغي",
	},
	models.LanguageTurkish: {
		models.StatusPending:   "Beklemede",
		models.StatusConfirmed: "Onaylandı",
		models.StatusCancelled: "İptal Edildi",
	},
}

var fieldLabels = map[string][]string{
	models.LanguageArabic:  {"العميل", "الهاتف", "الخدمة", "التاريخ", "الوقت", "المصدر", "الحالة"},
	models.LanguageTurkish: {"Müşteri", "Telefon", "Hizmet", "Tarih", "Saat", "Kaynak", "Durum"},
}

// RenderAppointmentMessage builds the localized subject and plain-text body
// for a new-appointment notification. Unknown locales fall back to Arabic;
// unknown catalogue values fall back to the raw stored string.
func RenderAppointmentMessage(appt models.Appointment, salonName string) (subject, body string) {
	lang := appt.Language
	if !models.ValidLanguage(lang) {
		lang = models.LanguageArabic
	}

	if lang == models.LanguageTurkish {
		subject = fmt.Sprintf("Yeni Randevu - %s", salonName)
	} else {
		subject = fmt.Sprintf("موعد جديد - %s", salonName)
	}

	service := appt.Service
	if name, ok := serviceNames[lang][appt.Service]; ok {
		service = name
	}
	source := string(appt.Source)
	if name, ok := sourceNames[lang][appt.Source]; ok {
		source = name
	}
	status := string(appt.Status)
	if name, ok := statusNames[lang][appt.Status]; ok {
		status = name
	}

	labels := fieldLabels[lang]
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", labels[0], appt.Name)
	fmt.Fprintf(&b, "%s: %s\n", labels[1], appt.Phone)
	fmt.Fprintf(&b, "%s: %s\n", labels[2], service)
	fmt.Fprintf(&b, "%s: %s\n", labels[3], appt.Date)
	fmt.Fprintf(&b, "%s: %s\n", labels[4], appt.Time)
	fmt.Fprintf(&b, "%s: %s\n", labels[5], source)
	fmt.Fprintf(&b, "%s: %s\n", labels[6], status)
	fmt.Fprintf(&b, "\n%s\n", appt.CreatedAt.Format(time.RFC1123))
	return subject, b.String()
}
