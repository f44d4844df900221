package repositories

import (
	"context"
	"fmt"

	"ncnews/internal/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity names a table whose rows can be looked up by their natural key.
type Entity int

const (
	EntityArticle Entity = iota
	EntityComment
	EntityTopic
	EntityUser
)

var entityKeys = map[Entity]struct {
	table   string
	column  string
	missing string
}{
	EntityArticle: {"articles", "article_id", "Article not found"},
	EntityComment: {"comments", "comment_id", "Comment not found"},
	EntityTopic:   {"topics", "slug", "Topic not found"},
	EntityUser:    {"users", "username", "User not found"},
}

// Checker confirms that an identifier refers to a live row.
type Checker struct {
	db *gorm.DB
}

func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// Exists returns a NotFound error when no row of kind e has key id.
func (c *Checker) Exists(ctx context.Context, e Entity, id any) error {
	key, ok := entityKeys[e]
	if !ok {
		return apperr.Internal(fmt.Errorf("unknown entity %d", e))
	}

	var count int64
	err := c.existsQuery(c.db.WithContext(ctx), e, id).Count(&count).Error
	if err != nil {
		return apperr.FromStorage(err)
	}
	if count == 0 {
		return apperr.NotFound(key.missing)
	}
	return nil
}

func (c *Checker) existsQuery(tx *gorm.DB, e Entity, id any) *gorm.DB {
	key := entityKeys[e]
	return tx.Table(key.table).
		Where(clause.Eq{Column: clause.Column{Table: key.table, Name: key.column}, Value: id}).
		Limit(1)
}
