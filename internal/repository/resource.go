package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/manga-catalog/admin-gateway/internal/gateway"
)

// Resource provides typed access to one backend collection. All state lives
// behind the catalog REST API; a repository is just the uniform CRUD surface
// over it. Create and Update pass the caller's payload through untouched,
// the backend owns validation.
type Resource[T any] struct {
	api  *gateway.Client
	base string
}

// NewResource builds a repository rooted at base (e.g. "/mangas").
func NewResource[T any](api *gateway.Client, base string) *Resource[T] {
	return &Resource[T]{api: api, base: base}
}

// List fetches a page of entities. params carries page, per_page, filter,
// sort and include query parameters.
func (r *Resource[T]) List(ctx context.Context, params url.Values) ([]T, gateway.Pagination, error) {
	return gateway.DoList[T](ctx, r.api, r.base, params)
}

// Get fetches a single entity by id.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	item, err := gateway.Do[T](ctx, r.api, http.MethodGet, r.base+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts a new entity.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	item, err := gateway.Do[T](ctx, r.api, http.MethodPost, r.base, nil, payload)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces fields of an existing entity.
func (r *Resource[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	item, err := gateway.Do[T](ctx, r.api, http.MethodPut, r.base+"/"+url.PathEscape(id), nil, payload)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an entity.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	_, err := gateway.Do[struct{}](ctx, r.api, http.MethodDelete, r.base+"/"+url.PathEscape(id), nil, nil)
	return err
}
