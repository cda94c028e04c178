package service_test

import (
	"context"
	"testing"

	"github.com/medinventory/medinv/internal/mock"
	"github.com/medinventory/medinv/internal/service"
	"github.com/medinventory/medinv/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEquipmentList_ClampsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := service.NewClientEquipmentService(mockAdapter)

	mockAdapter.EXPECT().
		ListEquipment(gomock.Any(), models.EquipmentFilter{}, 1, 10).
		Return(models.EquipmentPage{Page: 1, Limit: 10}, nil)

	_, err := svc.List(context.Background(), models.EquipmentFilter{}, 0, -5)
	require.NoError(t, err)
}

func TestEquipmentList_PassesFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := service.NewClientEquipmentService(mockAdapter)

	filter := models.EquipmentFilter{Status: models.EquipmentMaintenance, Sector: "ICU"}
	mockAdapter.EXPECT().
		ListEquipment(gomock.Any(), filter, 2, 25).
		Return(models.EquipmentPage{Page: 2, Limit: 25}, nil)

	page, err := svc.List(context.Background(), filter, 2, 25)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
}

func TestEquipmentCreate_TrimsAndDefaultsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := service.NewClientEquipmentService(mockAdapter)

	mockAdapter.EXPECT().
		CreateEquipment(gomock.Any(), models.Equipment{Name: "Ventilator", Kind: "respiratory", Status: models.EquipmentAvailable}).
		Return(models.Equipment{ID: 7, Name: "Ventilator", Kind: "respiratory", Status: models.EquipmentAvailable}, nil)

	created, err := svc.Create(context.Background(), models.Equipment{Name: "  Ventilator  ", Kind: " respiratory "})
	require.NoError(t, err)
	assert.EqualValues(t, 7, created.ID)
}

func TestEquipmentCreate_RejectsMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := service.NewClientEquipmentService(mockAdapter)

	tests := []struct {
		name      string
		equipment models.Equipment
	}{
		{"empty name", models.Equipment{Kind: "respiratory"}},
		{"blank name", models.Equipment{Name: "   ", Kind: "respiratory"}},
		{"empty kind", models.Equipment{Name: "Ventilator"}},
		{"bad status", models.Equipment{Name: "Ventilator", Kind: "respiratory", Status: "BROKEN"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.equipment)
			assert.ErrorIs(t, err, service.ErrInvalidEquipment)
		})
	}
}

func TestEquipmentChangeStatus_ValidatesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := service.NewClientEquipmentService(mockAdapter)

	_, err := svc.ChangeStatus(context.Background(), 7, "SOMEWHERE")
	assert.ErrorIs(t, err, service.ErrInvalidEquipment)

	mockAdapter.EXPECT().
		UpdateEquipmentStatus(gomock.Any(), int64(7), models.EquipmentRetired).
		Return(models.Equipment{ID: 7, Status: models.EquipmentRetired}, nil)

	updated, err := svc.ChangeStatus(context.Background(), 7, models.EquipmentRetired)
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentRetired, updated.Status)
}

func TestTeamService_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := service.NewClientTeamService(mockAdapter)

	staff := []models.User{{ID: 1, Username: "jdoe"}, {ID: 2, Username: "asmith"}}
	mockAdapter.EXPECT().ListUsers(gomock.Any()).Return(staff, nil)
	mockAdapter.EXPECT().GetUser(gomock.Any(), int64(2)).Return(staff[1], nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	one, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "asmith", one.Username)
}
