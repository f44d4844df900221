package repositories

import (
	"context"

	"ncnews/internal/apperr"
	"ncnews/internal/models"

	"gorm.io/gorm"
)

type TopicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

func (r *TopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&topics).Error; err != nil {
		return nil, apperr.FromStorage(err)
	}
	return topics, nil
}
