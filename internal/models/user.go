package models

type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `json:"avatar_url"`

	Articles []Article `gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Comments []Comment `gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (User) TableName() string { return "users" }
