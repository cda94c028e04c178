package service

import (
	"context"

	"github.com/medinventory/medinv/internal/adapter"
	"github.com/medinventory/medinv/models"
)

type clientTeamService struct {
	adapter adapter.ServerAdapter
}

func NewClientTeamService(serverAdapter adapter.ServerAdapter) ClientTeamService {
	return &clientTeamService{adapter: serverAdapter}
}

func (t *clientTeamService) List(ctx context.Context) ([]models.User, error) {
	return t.adapter.ListUsers(ctx)
}

func (t *clientTeamService) Get(ctx context.Context, id int64) (models.User, error) {
	return t.adapter.GetUser(ctx, id)
}
