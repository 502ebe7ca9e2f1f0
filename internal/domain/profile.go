package domain

// Profile is the root identity entity. Other entities reference it through
// owner_id, creator_id, assignee_id and user_id foreign keys.
type Profile struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:uq_profiles_email" json:"email"`
	FullName  string `gorm:"type:varchar(255);not null" json:"full_name"`
	AvatarURL string `gorm:"type:text" json:"avatar_url"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
