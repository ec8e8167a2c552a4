package repository

import (
	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
)

// DoujinshiRepository accesses the /doujinshis collection.
type DoujinshiRepository struct {
	*Resource[domain.Doujinshi]
}

// NewDoujinshiRepository builds the repository.
func NewDoujinshiRepository(api *gateway.Client) *DoujinshiRepository {
	return &DoujinshiRepository{Resource: NewResource[domain.Doujinshi](api, "/doujinshis")}
}
