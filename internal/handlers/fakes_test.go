package handlers

import (
	"context"
	"errors"
	"sync/atomic"

	"ncnews/internal/apperr"
	"ncnews/internal/models"
	"ncnews/internal/repositories"

	"github.com/gin-gonic/gin"
)

var errUnexpectedCall = errors.New("unexpected store call")

type fakeArticles struct {
	list   func(repositories.ListOptions) ([]models.ArticleSummary, error)
	find   func(int) (*models.Article, error)
	update func(id, delta int) (*models.Article, error)
	create func(*models.Article) error

	calls atomic.Int32
}

func (f *fakeArticles) List(_ context.Context, opts repositories.ListOptions) ([]models.ArticleSummary, error) {
	f.calls.Add(1)
	if f.list == nil {
		return nil, errUnexpectedCall
	}
	return f.list(opts)
}

func (f *fakeArticles) FindByID(_ context.Context, id int) (*models.Article, error) {
	f.calls.Add(1)
	if f.find == nil {
		return nil, errUnexpectedCall
	}
	return f.find(id)
}

func (f *fakeArticles) UpdateVotes(_ context.Context, id, delta int) (*models.Article, error) {
	f.calls.Add(1)
	if f.update == nil {
		return nil, errUnexpectedCall
	}
	return f.update(id, delta)
}

func (f *fakeArticles) Create(_ context.Context, a *models.Article) error {
	f.calls.Add(1)
	if f.create == nil {
		return errUnexpectedCall
	}
	return f.create(a)
}

type fakeComments struct {
	list   func(articleID int) ([]models.Comment, error)
	find   func(int) (*models.Comment, error)
	create func(*models.Comment) error
	remove func(int) error
	update func(id, delta int) (*models.Comment, error)

	calls atomic.Int32
}

func (f *fakeComments) ListByArticle(_ context.Context, articleID int) ([]models.Comment, error) {
	f.calls.Add(1)
	if f.list == nil {
		return nil, errUnexpectedCall
	}
	return f.list(articleID)
}

func (f *fakeComments) FindByID(_ context.Context, id int) (*models.Comment, error) {
	f.calls.Add(1)
	if f.find == nil {
		return nil, errUnexpectedCall
	}
	return f.find(id)
}

func (f *fakeComments) Create(_ context.Context, c *models.Comment) error {
	f.calls.Add(1)
	if f.create == nil {
		return errUnexpectedCall
	}
	return f.create(c)
}

func (f *fakeComments) Delete(_ context.Context, id int) error {
	f.calls.Add(1)
	if f.remove == nil {
		return errUnexpectedCall
	}
	return f.remove(id)
}

func (f *fakeComments) UpdateVotes(_ context.Context, id, delta int) (*models.Comment, error) {
	f.calls.Add(1)
	if f.update == nil {
		return nil, errUnexpectedCall
	}
	return f.update(id, delta)
}

type fakeTopics struct {
	topics []models.Topic
	err    error
}

func (f *fakeTopics) List(context.Context) ([]models.Topic, error) {
	return f.topics, f.err
}

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

// fakeChecker reports every id listed in missing as absent.
type fakeChecker struct {
	missing map[repositories.Entity]any
	calls   atomic.Int32
}

func (f *fakeChecker) Exists(_ context.Context, e repositories.Entity, id any) error {
	f.calls.Add(1)
	if m, ok := f.missing[e]; ok && m == id {
		switch e {
		case repositories.EntityArticle:
			return apperr.NotFound("Article not found")
		case repositories.EntityComment:
			return apperr.NotFound("Comment not found")
		case repositories.EntityTopic:
			return apperr.NotFound("Topic not found")
		default:
			return apperr.NotFound("User not found")
		}
	}
	return nil
}

type testDeps struct {
	articles *fakeArticles
	comments *fakeComments
	topics   *fakeTopics
	users    *fakeUsers
	checker  *fakeChecker
}

func newDeps() *testDeps {
	return &testDeps{
		articles: &fakeArticles{},
		comments: &fakeComments{},
		topics:   &fakeTopics{},
		users:    &fakeUsers{},
		checker:  &fakeChecker{missing: map[repositories.Entity]any{}},
	}
}

func (d *testDeps) engine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ah := NewArticleHandler(d.articles, d.checker)
	ch := NewCommentHandler(d.comments, d.checker)
	th := NewTopicHandler(d.topics)
	uh := NewUserHandler(d.users)

	r.GET("/api/topics", th.List)
	r.GET("/api/users", uh.List)
	r.GET("/api/users/:username", uh.Get)
	r.GET("/api/articles", ah.List)
	r.POST("/api/articles", ah.Create)
	r.GET("/api/articles/:article_id", ah.Get)
	r.PATCH("/api/articles/:article_id", ah.PatchVotes)
	r.GET("/api/articles/:article_id/comments", ch.ListForArticle)
	r.POST("/api/articles/:article_id/comments", ch.Create)
	r.PATCH("/api/comments/:comment_id", ch.PatchVotes)
	r.DELETE("/api/comments/:comment_id", ch.Delete)
	return r
}
