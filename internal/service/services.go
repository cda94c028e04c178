package service

import (
	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/store"
)

// Services bundles the server-side business logic behind the HTTP handlers.
type Services struct {
	AuthService      AuthService
	UserService      UserService
	EquipmentService EquipmentService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg, logger),
		UserService:      NewUserService(storages.UserRepository, logger),
		EquipmentService: NewEquipmentService(storages.EquipmentRepository, logger),
	}
}
