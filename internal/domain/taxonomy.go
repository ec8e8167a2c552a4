package domain

// Genre tags a manga with a category.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Artist is a manga author or illustrator.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is a scanlation group.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Doujinshi is a self-published series entry.
type Doujinshi struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}
