package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/mockdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestToDisplay_SeedAppointment(t *testing.T) {
	data := mockdata.NewDataset()
	m := NewMapper(berlin(t))

	got := m.ToDisplay(data.Appointments[0], data.Patients, data.Categories)

	assert.Equal(t, mockdata.AppointmentDoctorID, got.ID)
	assert.Equal(t, "Arzt-Termin", got.Title)
	assert.Equal(t, "2025-06-23", got.Date.Key())
	assert.Equal(t, "10:45", got.TimeStart)
	assert.Equal(t, "11:30", got.TimeEnd)
	assert.Equal(t, "Praxis von Frau Dr. med. Mustermann", got.Location)
	assert.Equal(t, []string{"Patient: Hans Müller", "Regelmäßige Kontrolle"}, got.Details)
	assert.Equal(t, "green", got.Color)
	assert.Equal(t, mockdata.PatientHansID, got.Patient)
	assert.Equal(t, mockdata.CategoryMedicalID, got.Category)
}

func TestToDisplay_SeedColors(t *testing.T) {
	data := mockdata.NewDataset()
	got := NewMapper(time.UTC).ToDisplayAll(data.Appointments, data.Patients, data.Categories)

	require.Len(t, got, 3)
	assert.Equal(t, "green", got[0].Color)
	assert.Equal(t, "purple", got[1].Color)
	assert.Equal(t, "blue", got[2].Color)
}

func TestToDisplay_UnresolvedReferences(t *testing.T) {
	rec := &entity.Appointment{
		ID:         "a1",
		Title:      "Ohne Bezug",
		Start:      time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
		PatientID:  "unknown",
		CategoryID: "unknown",
	}

	got := NewMapper(time.UTC).ToDisplay(rec, nil, nil)

	assert.Nil(t, got.Details, "no parts means no details at all")
	assert.Equal(t, "blue", got.Color)
	assert.Equal(t, "unknown", got.Patient)
}

func TestToDisplay_CategoryColorOutsidePalette(t *testing.T) {
	cats := []*entity.Category{{ID: "c1", Color: entity.ParseColor("#ff8800")}}
	rec := &entity.Appointment{ID: "a1", CategoryID: "c1", Notes: "nur Notiz"}

	got := NewMapper(time.UTC).ToDisplay(rec, nil, cats)

	assert.Equal(t, "blue", got.Color)
	assert.Equal(t, []string{"nur Notiz"}, got.Details)
}

func TestToDisplay_Deterministic(t *testing.T) {
	data := mockdata.NewDataset()
	m := NewMapper(berlin(t))

	for _, rec := range data.Appointments {
		first, err := json.Marshal(m.ToDisplay(rec, data.Patients, data.Categories))
		require.NoError(t, err)
		second, err := json.Marshal(m.ToDisplay(rec, data.Patients, data.Categories))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	}
}

func TestToDisplay_StableUnderReapplication(t *testing.T) {
	data := mockdata.NewDataset()
	m := NewMapper(berlin(t))

	for _, rec := range data.Appointments {
		display := m.ToDisplay(rec, data.Patients, data.Categories)

		start, err := display.Date.At(display.TimeStart)
		require.NoError(t, err)
		end, err := display.Date.At(display.TimeEnd)
		require.NoError(t, err)
		rebuilt := *rec
		rebuilt.Start, rebuilt.End = start, end

		assert.Equal(t, display, m.ToDisplay(&rebuilt, data.Patients, data.Categories))
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"7:05", 425, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12:5", 0, true},
		{"noon", 0, true},
	}
	for _, tt := range tests {
		got, err := MinutesSinceMidnight(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
