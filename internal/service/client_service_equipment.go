package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/medinventory/medinv/internal/adapter"
	"github.com/medinventory/medinv/models"
)

type clientEquipmentService struct {
	adapter adapter.ServerAdapter
}

func NewClientEquipmentService(serverAdapter adapter.ServerAdapter) ClientEquipmentService {
	return &clientEquipmentService{adapter: serverAdapter}
}

func (e *clientEquipmentService) List(ctx context.Context, filter models.EquipmentFilter, page, limit int) (models.EquipmentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return e.adapter.ListEquipment(ctx, filter, page, limit)
}

func (e *clientEquipmentService) Get(ctx context.Context, id int64) (models.Equipment, error) {
	return e.adapter.GetEquipment(ctx, id)
}

func (e *clientEquipmentService) Create(ctx context.Context, equipment models.Equipment) (models.Equipment, error) {
	if err := validateEquipment(&equipment); err != nil {
		return models.Equipment{}, err
	}
	return e.adapter.CreateEquipment(ctx, equipment)
}

func (e *clientEquipmentService) Update(ctx context.Context, id int64, equipment models.Equipment) (models.Equipment, error) {
	if err := validateEquipment(&equipment); err != nil {
		return models.Equipment{}, err
	}
	return e.adapter.UpdateEquipment(ctx, id, equipment)
}

func (e *clientEquipmentService) ChangeStatus(ctx context.Context, id int64, status models.EquipmentStatus) (models.Equipment, error) {
	if !status.Valid() {
		return models.Equipment{}, fmt.Errorf("%w: unknown status %q", ErrInvalidEquipment, status)
	}
	return e.adapter.UpdateEquipmentStatus(ctx, id, status)
}

func (e *clientEquipmentService) Delete(ctx context.Context, id int64) error {
	return e.adapter.DeleteEquipment(ctx, id)
}

// validateEquipment normalises and checks the editable fields before they go
// over the wire, so obvious mistakes fail without a round trip.
func validateEquipment(equipment *models.Equipment) error {
	equipment.Name = strings.TrimSpace(equipment.Name)
	equipment.Kind = strings.TrimSpace(equipment.Kind)

	if equipment.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEquipment)
	}
	if equipment.Kind == "" {
		return fmt.Errorf("%w: kind is required", ErrInvalidEquipment)
	}
	if equipment.Status == "" {
		equipment.Status = models.EquipmentAvailable
	}
	if !equipment.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidEquipment, equipment.Status)
	}
	return nil
}
