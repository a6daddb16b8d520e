package service

import (
	"context"
	"errors"
	"patientsapi/cmd/internal/domain/entity"
	"patientsapi/cmd/internal/utils/validators"
	"sort"

	"github.com/go-playground/validator/v10"
)

var errStorage = errors.New("storage is down")

func newValidate() *validator.Validate {
	v := validator.New()
	validators.Register(v)
	return v
}

type fakePatientRepo struct {
	rows   map[int]*entity.Patient
	nextID int
	err    error
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{rows: map[int]*entity.Patient{}, nextID: 1}
}

func (f *fakePatientRepo) FindByID(_ context.Context, id int) (*entity.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *row
	return &clone, nil
}

func (f *fakePatientRepo) FindAll(_ context.Context) ([]*entity.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Patient, 0, len(f.rows))
	for _, row := range f.rows {
		clone := *row
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePatientRepo) Save(_ context.Context, patient *entity.Patient) error {
	if f.err != nil {
		return f.err
	}
	if patient.ID == 0 {
		patient.ID = f.nextID
		f.nextID++
	}
	clone := *patient
	f.rows[patient.ID] = &clone
	return nil
}

func (f *fakePatientRepo) Delete(_ context.Context, patient *entity.Patient) error {
	if f.err != nil {
		return f.err
	}
	delete(f.rows, patient.ID)
	return nil
}

type fakeAppointmentRepo struct {
	rows   map[int]*entity.Appointment
	nextID int
	err    error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{rows: map[int]*entity.Appointment{}, nextID: 1}
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id int) (*entity.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *row
	return &clone, nil
}

func (f *fakeAppointmentRepo) FindAll(_ context.Context) ([]*entity.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Appointment, 0, len(f.rows))
	for _, row := range f.rows {
		clone := *row
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAppointmentRepo) Save(_ context.Context, appt *entity.Appointment) error {
	if f.err != nil {
		return f.err
	}
	if appt.ID == 0 {
		appt.ID = f.nextID
		f.nextID++
	}
	clone := *appt
	f.rows[appt.ID] = &clone
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, appt *entity.Appointment) error {
	if f.err != nil {
		return f.err
	}
	delete(f.rows, appt.ID)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
