package service

import "fmt"

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is the transient message shown to the user after an action.
// It is the only place a failed load or write becomes visible.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

func loadedNotification(source string) *Notification {
	if source == "mock" {
		return &Notification{NotifySuccess, "Mock-Daten geladen", "Die Anwendung verwendet jetzt Mock-Daten."}
	}
	return &Notification{NotifySuccess, "API-Daten geladen", "Die Anwendung verwendet jetzt API-Daten."}
}

var (
	loadFailed   = &Notification{NotifyError, "Fehler beim Laden der Daten", "Bitte versuchen Sie es später erneut."}
	filterFailed = &Notification{NotifyError, "Fehler beim Filtern der Termine", "Bitte versuchen Sie es später erneut."}
	filtered     = &Notification{NotifySuccess, "Filter angewendet", "Die Termine wurden nach deinen Kriterien gefiltert."}
	saveFailed   = &Notification{NotifyError, "Fehler beim Speichern", "Der Termin konnte nicht gespeichert werden. Bitte versuchen Sie es später erneut."}
)

func createdNotification(title string) *Notification {
	return &Notification{NotifySuccess, "Termin erstellt", fmt.Sprintf("Termin %q wurde erfolgreich erstellt.", title)}
}

func updatedNotification(title string) *Notification {
	return &Notification{NotifySuccess, "Termin aktualisiert", fmt.Sprintf("Termin %q wurde erfolgreich aktualisiert.", title)}
}
