package repository

import (
	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
)

// GroupRepository accesses the /groups collection.
type GroupRepository struct {
	*Resource[domain.Group]
}

// NewGroupRepository builds the repository.
func NewGroupRepository(api *gateway.Client) *GroupRepository {
	return &GroupRepository{Resource: NewResource[domain.Group](api, "/groups")}
}
