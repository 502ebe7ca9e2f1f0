package domain

// Tag labels tasks across a project. The name is globally unique;
// tasks reference tags through the task_tags join table.
type Tag struct {
	BaseModel
	Name  string `gorm:"type:varchar(100);not null;uniqueIndex:uq_tags_name" json:"name"`
	Color string `gorm:"type:varchar(7);not null" json:"color"`
	Tasks []Task `gorm:"many2many:task_tags" json:"tasks,omitempty"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
