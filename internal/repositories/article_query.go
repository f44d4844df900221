package repositories

import (
	"strconv"
	"strings"

	"ncnews/internal/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultSortBy  = "created_at"
	defaultPerPage = 10
)

// sortColumns is the closed set of columns an article list may be ordered by.
// comment_count is the aggregate alias and has no table qualifier.
var sortColumns = map[string]clause.Column{
	"article_id":      {Table: "articles", Name: "article_id"},
	"title":           {Table: "articles", Name: "title"},
	"topic":           {Table: "articles", Name: "topic"},
	"author":          {Table: "articles", Name: "author"},
	"body":            {Table: "articles", Name: "body"},
	"created_at":      {Table: "articles", Name: "created_at"},
	"votes":           {Table: "articles", Name: "votes"},
	"article_img_url": {Table: "articles", Name: "article_img_url"},
	"comment_count":   {Name: "comment_count"},
}

const commentCountColumn = "COUNT(comments.comment_id) AS comment_count"

const articleSummaryColumns = "articles.article_id, articles.author, articles.title, articles.topic, " +
	"articles.created_at, articles.votes, articles.article_img_url, " + commentCountColumn

const articleDetailColumns = "articles.*, " + commentCountColumn

const joinComments = "LEFT JOIN comments ON comments.article_id = articles.article_id"

// ArticleQuery is the raw, caller supplied listing request.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
	Limit  string
	Page   string
}

// ListOptions is a validated ArticleQuery.
type ListOptions struct {
	Topic  string
	SortBy string
	Desc   bool
	Limit  int
	Offset int
}

// Parse validates every structural token of q before any SQL is composed.
func (q ArticleQuery) Parse() (ListOptions, error) {
	opts := ListOptions{Topic: q.Topic, SortBy: defaultSortBy, Desc: true}

	if q.SortBy != "" {
		if _, ok := sortColumns[q.SortBy]; !ok {
			return ListOptions{}, apperr.BadRequest("Invalid sort_by query")
		}
		opts.SortBy = q.SortBy
	}

	switch strings.ToUpper(q.Order) {
	case "", "DESC":
		opts.Desc = true
	case "ASC":
		opts.Desc = false
	default:
		return ListOptions{}, apperr.BadRequest("Invalid order query")
	}

	if q.Limit == "" && q.Page == "" {
		return opts, nil
	}
	limit, err := positiveInt(q.Limit, defaultPerPage)
	if err != nil {
		return ListOptions{}, apperr.BadRequest("Invalid limit query")
	}
	page, err := positiveInt(q.Page, 1)
	if err != nil {
		return ListOptions{}, apperr.BadRequest("Invalid p query")
	}
	opts.Limit = limit
	opts.Offset = (page - 1) * limit
	return opts, nil
}

func positiveInt(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

// orderBy resolves the sort column through the allow-list again so that a
// hand-built ListOptions cannot smuggle a token into the statement.
func (o ListOptions) orderBy() ([]clause.OrderByColumn, error) {
	col, ok := sortColumns[o.SortBy]
	if !ok {
		return nil, apperr.BadRequest("Invalid sort_by query")
	}
	order := []clause.OrderByColumn{{Column: col, Desc: o.Desc}}
	if o.SortBy != "article_id" {
		order = append(order, clause.OrderByColumn{Column: sortColumns["article_id"], Desc: o.Desc})
	}
	return order, nil
}

// listArticlesQuery builds the summary listing. The topic is always a bound
// parameter, the ordering always a quoted allow-listed column.
func listArticlesQuery(tx *gorm.DB, opts ListOptions) (*gorm.DB, error) {
	order, err := opts.orderBy()
	if err != nil {
		return nil, err
	}

	tx = tx.Table("articles").
		Select(articleSummaryColumns).
		Joins(joinComments)
	if opts.Topic != "" {
		tx = tx.Where("articles.topic = ?", opts.Topic)
	}
	tx = tx.Group("articles.article_id")
	for _, o := range order {
		tx = tx.Order(o)
	}
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit).Offset(opts.Offset)
	}
	return tx, nil
}

// articleDetailQuery selects one article with its comment_count. The join is
// an outer join so that articles without comments still produce a row.
func articleDetailQuery(tx *gorm.DB, id int) *gorm.DB {
	return tx.Table("articles").
		Select(articleDetailColumns).
		Joins(joinComments).
		Where("articles.article_id = ?", id).
		Group("articles.article_id")
}
