package service

import (
	"context"
	"fmt"

	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/store"
	"github.com/medinventory/medinv/models"
)

type equipmentService struct {
	equipmentRepository store.EquipmentRepository
	logger              *logger.Logger
}

func NewEquipmentService(equipmentRepository store.EquipmentRepository, logger *logger.Logger) EquipmentService {
	return &equipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (e *equipmentService) Create(ctx context.Context, equipment models.Equipment) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	if err := validateEquipment(&equipment); err != nil {
		log.Error().Err(err).Msg("invalid equipment payload")
		return models.Equipment{}, err
	}

	created, err := e.equipmentRepository.CreateEquipment(ctx, equipment)
	if err != nil {
		log.Err(err).Str("name", equipment.Name).Msg("equipment creation ended with error")
		return models.Equipment{}, fmt.Errorf("equipment creation ended with error: %w", err)
	}

	return created, nil
}

func (e *equipmentService) Get(ctx context.Context, id int64) (models.Equipment, error) {
	return e.equipmentRepository.GetEquipment(ctx, id)
}

func (e *equipmentService) List(ctx context.Context, filter models.EquipmentFilter, page, limit int) (models.EquipmentPage, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return models.EquipmentPage{}, fmt.Errorf("%w: unknown status %q", ErrInvalidEquipment, filter.Status)
	}
	return e.equipmentRepository.ListEquipment(ctx, filter, page, limit)
}

func (e *equipmentService) Update(ctx context.Context, id int64, equipment models.Equipment) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	if err := validateEquipment(&equipment); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("invalid equipment payload")
		return models.Equipment{}, err
	}

	updated, err := e.equipmentRepository.UpdateEquipment(ctx, id, equipment)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("equipment update ended with error")
		return models.Equipment{}, fmt.Errorf("equipment update ended with error: %w", err)
	}

	return updated, nil
}

func (e *equipmentService) ChangeStatus(ctx context.Context, id int64, status models.EquipmentStatus) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	if !status.Valid() {
		return models.Equipment{}, fmt.Errorf("%w: unknown status %q", ErrInvalidEquipment, status)
	}

	updated, err := e.equipmentRepository.UpdateEquipmentStatus(ctx, id, status)
	if err != nil {
		log.Err(err).Int64("id", id).Str("status", string(status)).Msg("equipment status change ended with error")
		return models.Equipment{}, fmt.Errorf("equipment status change ended with error: %w", err)
	}

	return updated, nil
}

func (e *equipmentService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := e.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("equipment deletion ended with error")
		return fmt.Errorf("equipment deletion ended with error: %w", err)
	}

	return nil
}
