package domain

// Chapter is a single released chapter of a manga. User and Manga are
// populated only when the backend is asked to include them.
type Chapter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Order     int    `json:"order"`
	Views     int    `json:"views"`
	MangaID   string `json:"manga_id"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	User  *User  `json:"user,omitempty"`
	Manga *Manga `json:"manga,omitempty"`
}
