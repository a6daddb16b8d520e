package repository

import (
	"context"
	"path/filepath"
	"patientsapi/cmd/internal/config"
	"patientsapi/cmd/internal/domain/database"
	"patientsapi/cmd/internal/domain/entity"
	"testing"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(&config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "repo.db"),
	})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestPatientRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository(newTestDB(t))

	first := &entity.Patient{Name: "John Doe", Age: 30, Gender: "Male"}
	second := &entity.Patient{Name: "Jane Roe", Age: 28, Gender: "Female"}
	for _, p := range []*entity.Patient{first, second} {
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}
	if first.CreatedAt == 0 {
		t.Error("expected created_at to be set")
	}

	found, err := repo.FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.Name != "John Doe" || found.Age != 30 || found.Gender != "Male" {
		t.Fatalf("unexpected patient: %+v", found)
	}

	found.Name = "John Smith"
	found.Age = 31
	if err := repo.Save(ctx, found); err != nil {
		t.Fatalf("update: %v", err)
	}
	reloaded, _ := repo.FindByID(ctx, first.ID)
	if reloaded.Name != "John Smith" || reloaded.Age != 31 {
		t.Errorf("update not persisted: %+v", reloaded)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Fatalf("unexpected list: %+v", all)
	}

	if err := repo.Delete(ctx, reloaded); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := repo.FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("expected nil after delete, got %+v", gone)
	}
}

func TestPatientRepositoryFindMissing(t *testing.T) {
	repo := NewPatientRepository(newTestDB(t))

	p, err := repo.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil, got %+v", p)
	}
}

func TestAppointmentRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	appts := NewAppointmentRepository(db)

	// No patient exists with id 7: the reference is not enforced.
	appt := &entity.Appointment{PatientID: 7, Date: 1758794400000000, Reason: "Routine checkup"}
	if err := appts.Save(ctx, appt); err != nil {
		t.Fatalf("save: %v", err)
	}
	if appt.ID != 1 {
		t.Fatalf("id = %d, want 1", appt.ID)
	}

	found, err := appts.FindByID(ctx, appt.ID)
	if err != nil || found == nil {
		t.Fatalf("find: %v, %+v", err, found)
	}
	if found.PatientID != 7 || found.Date != 1758794400000000 || found.Reason != "Routine checkup" {
		t.Errorf("unexpected appointment: %+v", found)
	}

	// Deleting a patient leaves its appointments in place.
	patient := &entity.Patient{Name: "A", Age: 1, Gender: "F"}
	if err := patients.Save(ctx, patient); err != nil {
		t.Fatalf("save patient: %v", err)
	}
	linked := &entity.Appointment{PatientID: patient.ID, Date: 1758798000000000, Reason: "Follow-up"}
	if err := appts.Save(ctx, linked); err != nil {
		t.Fatalf("save linked: %v", err)
	}
	if err := patients.Delete(ctx, patient); err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	all, err := appts.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}

	if err := appts.Delete(ctx, found); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gone, _ := appts.FindByID(ctx, found.ID); gone != nil {
		t.Errorf("expected nil after delete, got %+v", gone)
	}
}
