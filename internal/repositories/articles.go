package repositories

import (
	"context"
	"errors"

	"ncnews/internal/apperr"
	"ncnews/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleRepository reads and writes articles. Nothing is cached between calls.
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// List returns article summaries filtered and ordered by opts.
// An empty slice is a valid result.
func (r *ArticleRepository) List(ctx context.Context, opts ListOptions) ([]models.ArticleSummary, error) {
	tx, err := listArticlesQuery(r.db.WithContext(ctx), opts)
	if err != nil {
		return nil, err
	}

	articles := make([]models.ArticleSummary, 0)
	if err := tx.Find(&articles).Error; err != nil {
		return nil, apperr.FromStorage(err)
	}
	return articles, nil
}

// FindByID returns the article with its comment_count.
func (r *ArticleRepository) FindByID(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	err := articleDetailQuery(r.db.WithContext(ctx), id).Take(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Article not found")
	}
	if err != nil {
		return nil, apperr.FromStorage(err)
	}
	return &article, nil
}

const updateArticleVotesSQL = `
WITH updated AS (
	UPDATE articles SET votes = votes + ? WHERE article_id = ? RETURNING *
)
SELECT updated.*,
	(SELECT COUNT(*) FROM comments WHERE comments.article_id = updated.article_id) AS comment_count
FROM updated`

// UpdateVotes adds delta to the stored votes in a single statement and
// returns the updated article.
func (r *ArticleRepository) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	var article models.Article
	result := r.db.WithContext(ctx).Raw(updateArticleVotesSQL, delta, id).Scan(&article)
	if result.Error != nil {
		return nil, apperr.FromStorage(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("Article not found")
	}
	return &article, nil
}

// Create inserts article. Missing image urls get the default image.
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = models.DefaultArticleImgURL
	}
	article.ArticleID = 0
	article.Votes = 0

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(article).Error; err != nil {
		return apperr.FromStorage(err)
	}
	article.CommentCount = 0
	return nil
}
