package services

import (
	"fmt"
	"time"

	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// PostsPerPage is the fixed page size of every post listing.
const PostsPerPage = 10

// FilterPostPublic keeps only posts readable by someone who is not the
// author: published, publication date reached, and the category (when
// there is one) published as well. A post without a category passes the
// category leg unconditionally. Location never participates here.
func FilterPostPublic(tx *gorm.DB, moment time.Time) *gorm.DB {
	return tx.
		Joins("LEFT JOIN categories ON categories.id = posts.category_id AND categories.deleted_at IS NULL").
		Where("posts.is_published = ?", true).
		Where("posts.pub_date <= ?", moment).
		Where("posts.category_id IS NULL OR categories.is_published = ?", true)
}

func FilterPostWithCategory(tx *gorm.DB, category models.Category) *gorm.DB {
	return tx.Where("posts.category_id = ?", category.ID)
}

func FilterPostWithAuthor(tx *gorm.DB, author models.Account) *gorm.DB {
	return tx.Where("posts.author_id = ?", author.ID)
}

func PreloadPostRelated(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Location").
		Preload("Category")
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}
	return count, nil
}

// ListPost pulls a page of posts newest-first and annotates each with its
// live comment count. The count is aggregated per request on purpose, it
// is never a stored counter.
func ListPost(tx *gorm.DB, take int, offset int) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadPostRelated(tx).
		Limit(take).Offset(offset).
		Order("posts.pub_date DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	if err := AttachPostCommentCount(items); err != nil {
		return items, err
	}

	return items, nil
}

func AttachPostCommentCount(items []*models.Post) error {
	if len(items) == 0 {
		return nil
	}

	idx := lo.Map(items, func(item *models.Post, index int) uint {
		return item.ID
	})

	var counts []struct {
		PostID uint
		Count  int64
	}

	if err := database.C.Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return err
	}

	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	for _, info := range counts {
		if post, ok := itemMap[info.PostID]; ok {
			post.CommentCount = info.Count
		}
	}

	return nil
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadPostRelated(tx).
		Where("posts.id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

// GetPostWithViewer resolves a post for the detail page. The author gets
// their own post back no matter its publish state; everyone else goes
// through the public predicate again, and a miss is a plain record-not-found
// so a hidden post cannot be told apart from an absent one.
func GetPostWithViewer(viewer *models.Account, id uint) (models.Post, error) {
	item, err := GetPost(database.C, id)
	if err != nil {
		return item, err
	}

	if viewer != nil && item.AuthorID == viewer.ID {
		return item, nil
	}

	return GetPost(FilterPostPublic(database.C, time.Now()), id)
}

// EnsurePostRelations swaps caller-supplied category and location ids for
// records that actually exist before anything is written.
func EnsurePostRelations(item models.Post) (models.Post, error) {
	if item.CategoryID != nil {
		category, err := GetCategoryWithID(*item.CategoryID)
		if err != nil {
			return item, fmt.Errorf("unable to find category: %v", err)
		}
		item.Category = &category
	}
	if item.LocationID != nil {
		location, err := GetLocationWithID(*item.LocationID)
		if err != nil {
			return item, fmt.Errorf("unable to find location: %v", err)
		}
		item.Location = &location
	}
	return item, nil
}

// NewPost stamps the acting viewer as the author, whatever the payload
// said, and persists the post.
func NewPost(author models.Account, item models.Post) (models.Post, error) {
	item.AuthorID = author.ID
	item.Author = author

	if item.PubDate.IsZero() {
		item.PubDate = time.Now()
	}

	item, err := EnsurePostRelations(item)
	if err != nil {
		return item, err
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("post", item.ID).Uint("author", author.ID).Msg("Created a new post.")
	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	item, err := EnsurePostRelations(item)
	if err != nil {
		return item, err
	}

	err = database.C.Save(&item).Error
	return item, err
}

// DeletePost removes a post together with its comment thread.
func DeletePost(item models.Post) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}
