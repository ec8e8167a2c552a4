package repository

import (
	"context"
	"net/http"

	"github.com/manga-catalog/admin-gateway/internal/domain"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
)

// ChapterRepository accesses the /chapters collection. Chapter lists are
// usually filtered by manga via filter[manga_id] and can include the user
// and manga relations.
type ChapterRepository struct {
	*Resource[domain.Chapter]
	api *gateway.Client
}

// NewChapterRepository builds the repository.
func NewChapterRepository(api *gateway.Client) *ChapterRepository {
	return &ChapterRepository{
		Resource: NewResource[domain.Chapter](api, "/chapters"),
		api:      api,
	}
}

type deleteManyRequest struct {
	IDs []string `json:"ids"`
}

// DeleteMany removes several chapters in one backend call.
func (r *ChapterRepository) DeleteMany(ctx context.Context, ids []string) error {
	_, err := gateway.Do[struct{}](ctx, r.api, http.MethodPut, "/chapters/delete-many", nil, deleteManyRequest{IDs: ids})
	return err
}
