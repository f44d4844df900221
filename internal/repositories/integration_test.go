//go:build integration

package repositories

import (
	"context"
	"sort"
	"testing"

	"ncnews/internal/apperr"
	"ncnews/internal/db/dbtest"
	"ncnews/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoriesIntegration(t *testing.T) {
	conn := dbtest.Start(t)
	ctx := context.Background()

	articles := NewArticleRepository(conn)
	comments := NewCommentRepository(conn)
	checker := NewChecker(conn)

	t.Run("article 1 detail", func(t *testing.T) {
		dbtest.Reseed(t, conn)
		a, err := articles.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, a.ArticleID)
		assert.Equal(t, 100, a.Votes)
		assert.Equal(t, 11, a.CommentCount)
		assert.Equal(t, "I find this existence challenging", a.Body)
	})

	t.Run("article without comments has comment_count 0", func(t *testing.T) {
		a, err := articles.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, a.CommentCount)
	})

	t.Run("missing article", func(t *testing.T) {
		_, err := articles.FindByID(ctx, 9999)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})

	t.Run("default listing is newest first", func(t *testing.T) {
		list, err := articles.List(ctx, ListOptions{SortBy: "created_at", Desc: true})
		require.NoError(t, err)
		require.Len(t, list, 13)
		assert.True(t, sort.SliceIsSorted(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}))
	})

	t.Run("reversed order is oldest first", func(t *testing.T) {
		list, err := articles.List(ctx, ListOptions{SortBy: "created_at"})
		require.NoError(t, err)
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i].CreatedAt.Before(list[i-1].CreatedAt))
		}
	})

	t.Run("sort by comment_count", func(t *testing.T) {
		list, err := articles.List(ctx, ListOptions{SortBy: "comment_count", Desc: true})
		require.NoError(t, err)
		assert.Equal(t, 1, list[0].ArticleID)
		assert.Equal(t, 11, list[0].CommentCount)
	})

	t.Run("topic filter", func(t *testing.T) {
		list, err := articles.List(ctx, ListOptions{Topic: "cats", SortBy: "created_at", Desc: true})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "cats", list[0].Topic)

		empty, err := articles.List(ctx, ListOptions{Topic: "paper", SortBy: "created_at", Desc: true})
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := articles.List(ctx, ListOptions{SortBy: "article_id", Limit: 5, Offset: 10})
		require.NoError(t, err)
		require.Len(t, page, 3)
		assert.Equal(t, 11, page[0].ArticleID)
	})

	t.Run("votes are applied in sequence", func(t *testing.T) {
		dbtest.Reseed(t, conn)
		a, err := articles.UpdateVotes(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 101, a.Votes)
		assert.Equal(t, 11, a.CommentCount)

		a, err = articles.UpdateVotes(ctx, 1, -99)
		require.NoError(t, err)
		assert.Equal(t, 2, a.Votes)

		dbtest.Reseed(t, conn)
		a, err = articles.UpdateVotes(ctx, 1, -99)
		require.NoError(t, err)
		assert.Equal(t, 1, a.Votes)

		_, err = articles.UpdateVotes(ctx, 9999, 1)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})

	t.Run("create article", func(t *testing.T) {
		a := &models.Article{Author: "lurker", Title: "Hello", Body: "World", Topic: "paper"}
		require.NoError(t, articles.Create(ctx, a))
		assert.Equal(t, 14, a.ArticleID)
		assert.Equal(t, models.DefaultArticleImgURL, a.ArticleImgURL)
		assert.False(t, a.CreatedAt.IsZero())

		err := articles.Create(ctx, &models.Article{Author: "nobody", Title: "x", Body: "y", Topic: "paper"})
		assert.True(t, apperr.Is(err, apperr.KindBadRequest))
	})

	t.Run("comments oldest first", func(t *testing.T) {
		dbtest.Reseed(t, conn)
		list, err := comments.ListByArticle(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 11)
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i].CreatedAt.Before(list[i-1].CreatedAt))
		}

		none, err := comments.ListByArticle(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("comment round trip", func(t *testing.T) {
		c := &models.Comment{ArticleID: 2, Author: "lurker", Body: "x"}
		require.NoError(t, comments.Create(ctx, c))
		assert.Equal(t, 19, c.CommentID)
		assert.Equal(t, 0, c.Votes)
		assert.False(t, c.CreatedAt.IsZero())

		list, err := comments.ListByArticle(ctx, 2)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "x", list[0].Body)
		assert.Equal(t, "lurker", list[0].Author)
	})

	t.Run("comment with unknown user is a bad request", func(t *testing.T) {
		err := comments.Create(ctx, &models.Comment{ArticleID: 1, Author: "ghost", Body: "boo"})
		assert.True(t, apperr.Is(err, apperr.KindBadRequest))
	})

	t.Run("delete comment", func(t *testing.T) {
		require.NoError(t, comments.Delete(ctx, 1))

		var n int64
		require.NoError(t, conn.Model(&models.Comment{}).Where("comment_id = ?", 1).Count(&n).Error)
		assert.Zero(t, n)

		err := comments.Delete(ctx, 1)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})

	t.Run("comment votes", func(t *testing.T) {
		c, err := comments.UpdateVotes(ctx, 2, -4)
		require.NoError(t, err)
		assert.Equal(t, 10, c.Votes)
	})

	t.Run("existence checks", func(t *testing.T) {
		assert.NoError(t, checker.Exists(ctx, EntityArticle, 1))
		assert.NoError(t, checker.Exists(ctx, EntityTopic, "paper"))
		assert.NoError(t, checker.Exists(ctx, EntityUser, "lurker"))

		err := checker.Exists(ctx, EntityTopic, "dogs")
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
		assert.Contains(t, err.Error(), "Topic not found")

		err = checker.Exists(ctx, EntityArticle, 9999)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})
}
