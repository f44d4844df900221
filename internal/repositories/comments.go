package repositories

import (
	"context"
	"errors"

	"ncnews/internal/apperr"
	"ncnews/internal/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByArticle returns the comments of an article, oldest first. It does not
// tell a missing article apart from one without comments; callers pair it
// with an existence check.
func (r *CommentRepository) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Order("comment_id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return comments, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("comment_id = ?", id).Take(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Comment not found")
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &comment, nil
}

// Create inserts comment and fills in the generated id, votes and timestamp.
// Unknown authors or articles surface as foreign key violations (400).
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.CommentID = 0
	comment.Votes = 0
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return apperr.FromStorage(err)
	}
	return nil
}

// Delete removes the comment permanently.
func (r *CommentRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Where("comment_id = ?", id).Delete(&models.Comment{})
	if result.Error != nil {
		return apperr.FromStorage(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Comment not found")
	}
	return nil
}

const updateCommentVotesSQL = `UPDATE comments SET votes = votes + ? WHERE comment_id = ? RETURNING *`

func (r *CommentRepository) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.WithContext(ctx).Raw(updateCommentVotesSQL, delta, id).Scan(&comment)
	if result.Error != nil {
		return nil, apperr.FromStorage(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("Comment not found")
	}
	return &comment, nil
}
