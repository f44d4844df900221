package models

type Topic struct {
	Slug        string `gorm:"primaryKey" json:"slug"`
	Description string `gorm:"not null" json:"description"`

	Articles []Article `gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (Topic) TableName() string { return "topics" }
