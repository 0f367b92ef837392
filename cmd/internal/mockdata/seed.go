package mockdata

import (
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/google/uuid"
)

// Seed identifiers are name-based (UUIDv5) so the dataset is cross-referenced
// the same way on every start.
var namespace = uuid.MustParse("6f1c2a4e-8d3b-4c5a-9e7f-0a1b2c3d4e5f")

func seedID(name string) string {
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

var (
	CategoryMedicalID        = seedID("category/medical")
	CategoryCareID           = seedID("category/care")
	CategoryAdministrativeID = seedID("category/administrative")

	PatientHansID  = seedID("patient/hans-mueller")
	PatientGretaID = seedID("patient/greta-schmidt")
	PatientKlausID = seedID("patient/klaus-weber")

	AppointmentDoctorID       = seedID("appointment/arzt-termin")
	AppointmentMDKID          = seedID("appointment/mdk-besuch")
	AppointmentConsultationID = seedID("appointment/beratungsgespraech")

	UserSarahID   = seedID("user/sarah")
	UserMichaelID = seedID("user/michael")
	UserJuliaID   = seedID("user/julia")
)

// Dataset is the full bootstrap set used in mock mode and by the seed command.
type Dataset struct {
	Categories   []*entity.Category
	Patients     []*entity.Patient
	Relatives    []*entity.Relative
	Appointments []*entity.Appointment
	Users        []*entity.User
	Assignments  []*entity.Assignment
	Activities   []*entity.Activity
}

func utc(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func attachment(appt *entity.Appointment, file string) *entity.Appointment {
	appt.SetAttachments([]string{file})
	return appt
}

// NewDataset builds a fresh copy of the bootstrap set.
func NewDataset() *Dataset {
	return &Dataset{
		Categories: []*entity.Category{
			{
				ID:          CategoryMedicalID,
				CreatedAt:   utc("2025-05-01T10:00:00Z"),
				UpdatedAt:   utc("2025-05-01T10:00:00Z"),
				Label:       "Medical",
				Description: "Medical appointments like doctor visits and treatments",
				Color:       entity.ColorGreen,
				Icon:        "medical-bag",
			},
			{
				ID:          CategoryCareID,
				CreatedAt:   utc("2025-05-01T10:05:00Z"),
				UpdatedAt:   utc("2025-05-01T10:05:00Z"),
				Label:       "Care",
				Description: "Care service appointments like nursing or therapy",
				Color:       entity.ColorPurple,
				Icon:        "heart-pulse",
			},
			{
				ID:          CategoryAdministrativeID,
				CreatedAt:   utc("2025-05-01T10:10:00Z"),
				UpdatedAt:   utc("2025-05-01T10:10:00Z"),
				Label:       "Administrative",
				Description: "Administrative appointments like paperwork or insurance",
				Color:       entity.ColorBlue,
				Icon:        "file-document",
			},
		},
		Patients: []*entity.Patient{
			{
				ID:          PatientHansID,
				CreatedAt:   utc("2025-01-15T08:30:00Z"),
				Firstname:   "Hans",
				Lastname:    "Müller",
				BirthDate:   utc("1948-05-22T00:00:00Z"),
				CareLevel:   3,
				Pronoun:     "er/ihm",
				Email:       "hans.mueller@example.com",
				Active:      true,
				ActiveSince: utc("2025-01-15T08:30:00Z"),
			},
			{
				ID:          PatientGretaID,
				CreatedAt:   utc("2025-02-10T09:15:00Z"),
				Firstname:   "Greta",
				Lastname:    "Schmidt",
				BirthDate:   utc("1952-11-08T00:00:00Z"),
				CareLevel:   2,
				Pronoun:     "sie/ihr",
				Email:       "greta.schmidt@example.com",
				Active:      true,
				ActiveSince: utc("2025-02-10T09:15:00Z"),
			},
			{
				ID:          PatientKlausID,
				CreatedAt:   utc("2025-03-05T14:45:00Z"),
				Firstname:   "Klaus",
				Lastname:    "Weber",
				BirthDate:   utc("1942-08-17T00:00:00Z"),
				CareLevel:   4,
				Pronoun:     "er/ihm",
				Email:       "klaus.weber@example.com",
				Active:      true,
				ActiveSince: utc("2025-03-05T14:45:00Z"),
			},
		},
		Relatives: []*entity.Relative{
			{
				ID:        seedID("relative/helga-mueller"),
				CreatedAt: utc("2025-01-15T08:35:00Z"),
				Pronoun:   "sie/ihr",
				Firstname: "Helga",
				Lastname:  "Müller",
				Notes:     "Tochter von Hans Müller, Hauptkontaktperson",
				PatientID: PatientHansID,
			},
			{
				ID:        seedID("relative/thomas-schmidt"),
				CreatedAt: utc("2025-02-10T09:20:00Z"),
				Pronoun:   "er/ihm",
				Firstname: "Thomas",
				Lastname:  "Schmidt",
				Notes:     "Sohn von Greta Schmidt, erreichbar am Wochenende",
				PatientID: PatientGretaID,
			},
			{
				ID:        seedID("relative/anna-weber"),
				CreatedAt: utc("2025-03-05T14:50:00Z"),
				Pronoun:   "sie/ihr",
				Firstname: "Anna",
				Lastname:  "Weber",
				Notes:     "Enkelin von Klaus Weber, arbeitet als Krankenschwester",
				PatientID: PatientKlausID,
			},
		},
		Appointments: []*entity.Appointment{
			attachment(&entity.Appointment{
				ID:         AppointmentDoctorID,
				CreatedAt:  utc("2025-06-01T09:00:00Z"),
				UpdatedAt:  utc("2025-06-01T09:00:00Z"),
				Start:      utc("2025-06-23T08:45:00Z"),
				End:        utc("2025-06-23T09:30:00Z"),
				Location:   "Praxis von Frau Dr. med. Mustermann",
				PatientID:  PatientHansID,
				CategoryID: CategoryMedicalID,
				Notes:      "Regelmäßige Kontrolle",
				Title:      "Arzt-Termin",
			}, "versicherungskarte.pdf"),
			attachment(&entity.Appointment{
				ID:         AppointmentMDKID,
				CreatedAt:  utc("2025-06-05T11:30:00Z"),
				UpdatedAt:  utc("2025-06-05T11:30:00Z"),
				Start:      utc("2025-06-24T12:30:00Z"),
				End:        utc("2025-06-24T17:30:00Z"),
				Location:   "Bei Herr Musterpatienti zuhause",
				PatientID:  PatientGretaID,
				CategoryID: CategoryCareID,
				Notes:      "Pflegemappe soll vorort dabei sein",
				Title:      "MDK Besuch - Mögliche Erhöhung des Pflegegrad",
			}, "pflegemappe.pdf"),
			attachment(&entity.Appointment{
				ID:         AppointmentConsultationID,
				CreatedAt:  utc("2025-06-10T14:00:00Z"),
				UpdatedAt:  utc("2025-06-10T14:00:00Z"),
				Start:      utc("2025-06-30T10:00:00Z"),
				End:        utc("2025-06-30T11:00:00Z"),
				Location:   "Büro der Pflegeversicherung",
				PatientID:  PatientKlausID,
				CategoryID: CategoryAdministrativeID,
				Notes:      "Vollmacht mitbringen",
				Title:      "Beratungsgespräch zur Pflegeversicherung",
			}, "antragsformulare.pdf"),
		},
		Users: []*entity.User{
			{ID: UserSarahID, Name: "Sarah Krankenschwester", Email: "sarah@pflegedienst-example.de", Role: "nurse"},
			{ID: UserMichaelID, Name: "Michael Pflegehelfer", Email: "michael@pflegedienst-example.de", Role: "care_assistant"},
			{ID: UserJuliaID, Name: "Julia Verwaltung", Email: "julia@pflegedienst-example.de", Role: "administrative"},
		},
		Assignments: []*entity.Assignment{
			{
				ID:            seedID("assignment/1"),
				CreatedAt:     utc("2025-06-01T09:05:00Z"),
				AppointmentID: AppointmentDoctorID,
				UserID:        UserSarahID,
				UserType:      "begleitung",
			},
			{
				ID:            seedID("assignment/2"),
				CreatedAt:     utc("2025-06-05T11:35:00Z"),
				AppointmentID: AppointmentMDKID,
				UserID:        UserMichaelID,
				UserType:      "hauptverantwortlich",
			},
			{
				ID:            seedID("assignment/3"),
				CreatedAt:     utc("2025-06-10T14:05:00Z"),
				AppointmentID: AppointmentConsultationID,
				UserID:        UserJuliaID,
				UserType:      "verwaltung",
			},
		},
		Activities: []*entity.Activity{
			{
				ID:            seedID("activity/1"),
				CreatedAt:     utc("2025-06-01T09:10:00Z"),
				CreatedBy:     UserSarahID,
				AppointmentID: AppointmentDoctorID,
				Type:          "note",
				Content:       "Patientenakte aktualisiert und Termin bestätigt",
			},
			{
				ID:            seedID("activity/2"),
				CreatedAt:     utc("2025-06-05T11:40:00Z"),
				CreatedBy:     UserMichaelID,
				AppointmentID: AppointmentMDKID,
				Type:          "document",
				Content:       "Pflegemappe für MDK Besuch vorbereitet",
			},
			{
				ID:            seedID("activity/3"),
				CreatedAt:     utc("2025-06-10T14:10:00Z"),
				CreatedBy:     UserJuliaID,
				AppointmentID: AppointmentConsultationID,
				Type:          "reminder",
				Content:       "Erinnerung: Vollmacht für Beratungsgespräch benötigt",
			},
		},
	}
}
