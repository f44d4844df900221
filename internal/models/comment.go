package models

import (
	"time"
)

type Comment struct {
	CommentID int       `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	ArticleID int       `gorm:"not null;index" json:"article_id"`
	Author    string    `gorm:"not null;index" json:"author"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
