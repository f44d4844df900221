package handlers

import (
	"context"

	"ncnews/internal/models"
	"ncnews/internal/repositories"
)

// The interfaces below are satisfied by the repositories package and by the
// in-memory fakes used in tests.

type ArticleStore interface {
	List(ctx context.Context, opts repositories.ListOptions) ([]models.ArticleSummary, error)
	FindByID(ctx context.Context, id int) (*models.Article, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
}

type CommentStore interface {
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	FindByID(ctx context.Context, id int) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int) error
	UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error)
}

type TopicStore interface {
	List(ctx context.Context) ([]models.Topic, error)
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type ExistenceChecker interface {
	Exists(ctx context.Context, e repositories.Entity, id any) error
}
