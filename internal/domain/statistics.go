package domain

// DashboardStats carries the counters shown on the panel landing page.
type DashboardStats struct {
	TotalUsers    int `json:"total_users"`
	TotalMangas   int `json:"total_mangas"`
	TotalChapters int `json:"total_chapters"`
	TotalPets     int `json:"total_pets"`
}
