package db

import (
	"fmt"
	"ncnews/internal/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedData is a full snapshot of the four tables. Ids are assigned by the
// database in slice order, so position i of Articles becomes article_id i+1.
type SeedData struct {
	Topics   []models.Topic
	Users    []models.User
	Articles []models.Article
	Comments []models.Comment
}

// Seed drops every table, recreates the schema and loads data.
func Seed(conn *gorm.DB, data SeedData) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().DropTable(&models.Comment{}, &models.Article{}, &models.User{}, &models.Topic{}); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
		if err := Migrate(tx); err != nil {
			return err
		}

		steps := []struct {
			name string
			rows any
			n    int
		}{
			{"topics", &data.Topics, len(data.Topics)},
			{"users", &data.Users, len(data.Users)},
			{"articles", &data.Articles, len(data.Articles)},
			{"comments", &data.Comments, len(data.Comments)},
		}
		for _, s := range steps {
			if s.n == 0 {
				continue
			}
			if err := tx.Omit(clause.Associations).Create(s.rows).Error; err != nil {
				return fmt.Errorf("insert %s: %w", s.name, err)
			}
		}
		return nil
	})
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DevData is the dataset used for local development and integration tests.
// Article 1 has 11 comments, article 2 and topic "paper" have none.
func DevData() SeedData {
	img := models.DefaultArticleImgURL
	return SeedData{
		Topics: []models.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []models.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []models.Article{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ts("2020-07-09T20:11:00Z"), Votes: 100, ArticleImgURL: img},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago, never mind how long precisely, having little or no money in my purse, and nothing particular to interest me on shore, I thought I would buy a laptop about a little and see the codey part of the world.", CreatedAt: ts("2020-10-16T05:03:00Z"), ArticleImgURL: img},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ts("2020-11-03T09:12:00Z"), ArticleImgURL: img},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY burst another students eardrums, and they are now suing for damages", CreatedAt: ts("2020-05-06T01:14:00Z"), ArticleImgURL: img},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ts("2020-08-03T14:14:00Z"), ArticleImgURL: img},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ts("2020-10-18T01:00:00Z"), ArticleImgURL: img},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: ts("2020-01-07T14:08:00Z"), ArticleImgURL: img},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch. Surely it is not merely a coincidence?", CreatedAt: ts("2020-04-17T02:08:00Z"), ArticleImgURL: img},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: ts("2020-06-06T10:10:00Z"), ArticleImgURL: img},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: ts("2020-05-14T05:15:00Z"), ArticleImgURL: img},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall blankly, like a cat. Does this make me a cat?", CreatedAt: ts("2020-01-15T22:21:00Z"), ArticleImgURL: img},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: ts("2020-10-11T12:24:00Z"), ArticleImgURL: img},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: ts("2020-10-11T12:24:00Z"), ArticleImgURL: img},
		},
		Comments: []models.Comment{
			{ArticleID: 9, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", Votes: 16, CreatedAt: ts("2020-04-06T12:17:00Z")},
			{ArticleID: 1, Author: "butter_bridge", Body: "The beautiful thing about treasure is that it exists. Got to find out what it is before you sell it.", Votes: 14, CreatedAt: ts("2020-10-31T03:03:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy, on you it works.", Votes: 100, CreatedAt: ts("2020-03-01T01:13:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "I carry a log, yes. Is it funny to you? It is not to me.", Votes: -100, CreatedAt: ts("2020-02-23T12:01:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming noses", CreatedAt: ts("2020-11-03T21:00:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "I hate streaming eyes even more", CreatedAt: ts("2020-04-11T21:02:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", CreatedAt: ts("2020-05-15T20:19:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "Delicious crackerbreads", CreatedAt: ts("2020-04-14T20:19:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "Superficially charming", CreatedAt: ts("2020-01-01T03:08:00Z")},
			{ArticleID: 3, Author: "icellusedkars", Body: "git push origin master", CreatedAt: ts("2020-06-20T07:24:00Z")},
			{ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", CreatedAt: ts("2020-09-19T23:10:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "Massive intercranial brain haemorrhage", CreatedAt: ts("2020-03-02T07:10:00Z")},
			{ArticleID: 1, Author: "icellusedkars", Body: "Fruit pastilles", CreatedAt: ts("2020-06-15T10:25:00Z")},
			{ArticleID: 5, Author: "icellusedkars", Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", Votes: 16, CreatedAt: ts("2020-06-09T05:00:00Z")},
			{ArticleID: 5, Author: "butter_bridge", Body: "I am 100% sure that we're not completely sure.", Votes: 1, CreatedAt: ts("2020-11-24T00:08:00Z")},
			{ArticleID: 6, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1, CreatedAt: ts("2020-10-11T15:23:00Z")},
			{ArticleID: 9, Author: "icellusedkars", Body: "The owls are not what they seem.", Votes: 20, CreatedAt: ts("2020-03-14T17:02:00Z")},
			{ArticleID: 1, Author: "butter_bridge", Body: "This morning, I showered for nine minutes.", Votes: 16, CreatedAt: ts("2020-07-21T00:20:00Z")},
		},
	}
}
