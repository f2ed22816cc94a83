package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"chronicle/pkg/internal/cache"
	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func useTestDatabase(t *testing.T) {
	t.Helper()

	if cache.S == nil {
		require.NoError(t, cache.NewStore())
	}

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	database.C = db
}

func makeAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account := models.Account{Name: name, Nick: name}
	require.NoError(t, database.C.Create(&account).Error)
	return account
}

func makeCategory(t *testing.T, slug string, published bool) models.Category {
	t.Helper()

	category := models.Category{Slug: slug, Title: slug, IsPublished: published}
	require.NoError(t, database.C.Create(&category).Error)
	return category
}

func makeLocation(t *testing.T, name string, published bool) models.Location {
	t.Helper()

	location := models.Location{Name: name, IsPublished: published}
	require.NoError(t, database.C.Create(&location).Error)
	return location
}

func makePost(t *testing.T, author models.Account, published bool, pubDate time.Time, category *models.Category) models.Post {
	t.Helper()

	item := models.Post{
		Title:       fmt.Sprintf("post by %s", author.Name),
		Text:        "some text",
		PubDate:     pubDate,
		IsPublished: published,
		AuthorID:    author.ID,
	}
	if category != nil {
		item.CategoryID = &category.ID
	}
	require.NoError(t, database.C.Create(&item).Error)
	return item
}

func makeComment(t *testing.T, author models.Account, post models.Post, text string) models.Comment {
	t.Helper()

	item := models.Comment{Text: text, AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, database.C.Create(&item).Error)
	return item
}
