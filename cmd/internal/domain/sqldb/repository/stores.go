package repository

import (
	"github.com/amritkc/vocareapp/cmd/internal/gateway"
	"gorm.io/gorm"
)

// NewStores builds every gateway store on top of one connection.
func NewStores(db *gorm.DB) gateway.Stores {
	return gateway.Stores{
		Appointments: NewAppointmentRepository(db),
		Patients:     NewPatientRepository(db),
		Categories:   NewCategoryRepository(db),
		Users:        NewUserRepository(db),
		Activities:   NewActivityRepository(db),
		Assignments:  NewAssignmentRepository(db),
	}
}
