package models

import (
	"time"
)

const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

type Article struct {
	ArticleID     int       `gorm:"primaryKey;column:article_id" json:"article_id"`
	Title         string    `gorm:"not null" json:"title"`
	Topic         string    `gorm:"not null;index" json:"topic"`
	Author        string    `gorm:"not null;index" json:"author"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Votes         int       `gorm:"not null;default:0" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url;not null" json:"article_img_url"`

	// Aggregated at read time through LEFT JOIN comments.
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`

	Comments []Comment `gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Article) TableName() string { return "articles" }

// ArticleSummary is the list projection of an article. It never carries the body.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}
