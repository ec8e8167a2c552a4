package repository

import (
	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
)

// GenreRepository accesses the /genres collection.
type GenreRepository struct {
	*Resource[domain.Genre]
}

// NewGenreRepository builds the repository.
func NewGenreRepository(api *gateway.Client) *GenreRepository {
	return &GenreRepository{Resource: NewResource[domain.Genre](api, "/genres")}
}
