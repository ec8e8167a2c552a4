package repository

import (
	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
)

// UserRepository accesses the /users collection. The panel only lists,
// inspects and updates accounts; users register through the public site.
type UserRepository struct {
	*Resource[domain.User]
}

// NewUserRepository builds the repository.
func NewUserRepository(api *gateway.Client) *UserRepository {
	return &UserRepository{Resource: NewResource[domain.User](api, "/users")}
}
