package domain

// MangaStatus enumerates publication states.
type MangaStatus string

const (
	MangaStatusOngoing   MangaStatus = "ongoing"
	MangaStatusCompleted MangaStatus = "completed"
	MangaStatusOnHold    MangaStatus = "onhold"
	MangaStatusCanceled  MangaStatus = "canceled"
)

// Manga is a catalog series entry.
type Manga struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	NameAlt      *string     `json:"name_alt,omitempty"`
	Slug         string      `json:"slug"`
	Status       MangaStatus `json:"status"`
	Cover        string      `json:"cover"`
	CoverFullURL string      `json:"cover_full_url"`
	IsReviewed   bool        `json:"is_reviewed"`
	UserID       string      `json:"user_id"`
	ArtistID     *string     `json:"artist_id,omitempty"`
	GroupID      *string     `json:"group_id,omitempty"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
	Genres       []Genre     `json:"genres,omitempty"`
}
