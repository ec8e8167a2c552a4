package domain

// User is a catalog end-user account managed through the panel.
type User struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Email                  string  `json:"email"`
	GoogleID               *string `json:"google_id,omitempty"`
	EmailVerifiedAt        *string `json:"email_verified_at,omitempty"`
	TotalPoints            int     `json:"total_points"`
	UsedPoints             int     `json:"used_points"`
	AchievementsPoints     int     `json:"achievements_points"`
	Exp                    int     `json:"exp"`
	Level                  int     `json:"level"`
	LastReadingCheck       *string `json:"last_reading_check,omitempty"`
	PetID                  *string `json:"pet_id,omitempty"`
	AchievementID          *string `json:"achievement_id,omitempty"`
	BannedUntil            *string `json:"banned_until,omitempty"`
	LimitPetPoints         int     `json:"limit_pet_points"`
	LimitAchievementPoints int     `json:"limit_achievement_points"`
	CreatedAt              string  `json:"created_at"`
	UpdatedAt              string  `json:"updated_at"`
	AvatarFullURL          string  `json:"avatar_full_url"`
}
