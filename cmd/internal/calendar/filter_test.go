package calendar

import (
	"testing"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/mockdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(t time.Time) *time.Time {
	return &t
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	appts := mockdata.NewDataset().Appointments

	got := Filter(appts, Criteria{}, time.UTC)

	assert.Equal(t, appts, got)
	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, Criteria{Patient: All, Category: All}.IsEmpty())
}

func TestFilter_AllEqualsOmitted(t *testing.T) {
	appts := mockdata.NewDataset().Appointments
	from := ptr(time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC))

	withAll := Filter(appts, Criteria{Category: All, StartDate: from}, time.UTC)
	without := Filter(appts, Criteria{StartDate: from}, time.UTC)

	assert.Equal(t, without, withAll)
	assert.Len(t, withAll, 2)
}

func TestFilter_Category(t *testing.T) {
	appts := mockdata.NewDataset().Appointments

	got := Filter(appts, Criteria{Category: mockdata.CategoryCareID}, time.UTC)

	require.Len(t, got, 1)
	assert.Equal(t, "MDK Besuch - Mögliche Erhöhung des Pflegegrad", got[0].Title)
}

func TestFilter_Patient(t *testing.T) {
	appts := mockdata.NewDataset().Appointments

	got := Filter(appts, Criteria{Patient: mockdata.PatientKlausID}, time.UTC)

	require.Len(t, got, 1)
	assert.Equal(t, mockdata.AppointmentConsultationID, got[0].ID)
}

func TestFilter_StartDateFullPrecision(t *testing.T) {
	appts := mockdata.NewDataset().Appointments

	// The first appointment starts at 08:45Z; a bound one minute later excludes it.
	got := Filter(appts, Criteria{StartDate: ptr(time.Date(2025, 6, 23, 8, 46, 0, 0, time.UTC))}, time.UTC)
	assert.Len(t, got, 2)

	got = Filter(appts, Criteria{StartDate: ptr(time.Date(2025, 6, 23, 8, 45, 0, 0, time.UTC))}, time.UTC)
	assert.Len(t, got, 3)
}

func TestFilter_EndDateIncludesWholeDay(t *testing.T) {
	appts := mockdata.NewDataset().Appointments

	// Midnight of the 24th still includes the 12:30Z appointment that day.
	got := Filter(appts, Criteria{EndDate: ptr(time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC))}, time.UTC)

	require.Len(t, got, 2)
	assert.Equal(t, mockdata.AppointmentDoctorID, got[0].ID)
	assert.Equal(t, mockdata.AppointmentMDKID, got[1].ID)
}

func TestFilter_Conjunction(t *testing.T) {
	appts := mockdata.NewDataset().Appointments

	got := Filter(appts, Criteria{
		Patient:  mockdata.PatientGretaID,
		Category: mockdata.CategoryMedicalID,
	}, time.UTC)

	assert.Empty(t, got)
}

func TestCriteria_QueryEndOfDayInLocation(t *testing.T) {
	loc := berlin(t)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, loc)

	q := Criteria{Category: All, EndDate: &end}.Query(loc)

	assert.Empty(t, q.CategoryID)
	require.NotNil(t, q.To)
	assert.Equal(t, time.Date(2025, 6, 30, 23, 59, 59, 999_000_000, loc), *q.To)
	assert.Nil(t, q.From)
}
