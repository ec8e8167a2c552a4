package repository

import (
	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
)

// MangaRepository accesses the /mangas collection.
type MangaRepository struct {
	*Resource[domain.Manga]
}

// NewMangaRepository builds the repository.
func NewMangaRepository(api *gateway.Client) *MangaRepository {
	return &MangaRepository{Resource: NewResource[domain.Manga](api, "/mangas")}
}
