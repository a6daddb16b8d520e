package repository

import (
	"context"
	"errors"
	"patientsapi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *DefaultPatientRepository {
	return &DefaultPatientRepository{db: db}
}

func (p *DefaultPatientRepository) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := p.db.WithContext(ctx).First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (p *DefaultPatientRepository) FindAll(ctx context.Context) ([]*entity.Patient, error) {
	var patients []*entity.Patient
	err := p.db.WithContext(ctx).Order("id asc").Find(&patients).Error
	return patients, err
}

func (p *DefaultPatientRepository) Save(ctx context.Context, patient *entity.Patient) error {
	return p.db.WithContext(ctx).Save(patient).Error
}

func (p *DefaultPatientRepository) Delete(ctx context.Context, patient *entity.Patient) error {
	return p.db.WithContext(ctx).Delete(patient).Error
}
