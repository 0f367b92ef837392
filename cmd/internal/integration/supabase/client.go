package supabase

import (
	"encoding/json"
	"fmt"

	"github.com/amritkc/vocareapp/cmd/internal/gateway"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

const (
	tableAppointments = "appointments"
	tablePatients     = "patients"
	tableRelatives    = "relatives"
	tableCategories   = "categories"
	tableUsers        = "users"
	tableActivities   = "activities"
	tableAssignees    = "appointment_assignee"

	returnRepresentation = "representation"
)

// NewClient connects to the Supabase project at url with the given API key.
func NewClient(url, key string) (*supa.Client, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase client: %w", err)
	}
	return client, nil
}

// NewStores builds every gateway store on top of one client.
func NewStores(client *supa.Client) gateway.Stores {
	return gateway.Stores{
		Appointments: &AppointmentStore{client: client},
		Patients:     &PatientStore{client: client},
		Categories:   &CategoryStore{client: client},
		Users:        &UserStore{client: client},
		Activities:   &ActivityStore{client: client},
		Assignments:  &AssignmentStore{client: client},
	}
}

var ascending = &postgrest.OrderOpts{Ascending: true}

// decode takes the results of Execute directly.
func decode[T any](data []byte, _ int64, err error) ([]*T, error) {
	if err != nil {
		return nil, err
	}
	var rows []*T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return rows, nil
}

// first returns the single row of an insert or update response, nil when
// the response is empty.
func first[T any](rows []*T, err error) (*T, error) {
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}
