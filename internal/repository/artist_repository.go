package repository

import (
	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
)

// ArtistRepository accesses the /artists collection.
type ArtistRepository struct {
	*Resource[domain.Artist]
}

// NewArtistRepository builds the repository.
func NewArtistRepository(api *gateway.Client) *ArtistRepository {
	return &ArtistRepository{Resource: NewResource[domain.Artist](api, "/artists")}
}
