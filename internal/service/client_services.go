package service

import (
	"github.com/medinventory/medinv/internal/adapter"
	"github.com/medinventory/medinv/internal/config"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/internal/store"
)

// ClientServices groups the client-side services handed to the TUI.
type ClientServices struct {
	SessionService   ClientSessionService
	EquipmentService ClientEquipmentService
	TeamService      ClientTeamService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, appCfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService:   NewClientSessionService(localStore, serverAdapter, appCfg, logger),
		EquipmentService: NewClientEquipmentService(serverAdapter),
		TeamService:      NewClientTeamService(serverAdapter),
	}
}
