package services

import (
	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/models"

	"github.com/rs/zerolog/log"
)

// ListCommentWithPost returns the full thread of a post, oldest first,
// with authors resolved for rendering.
func ListCommentWithPost(postID uint) ([]models.Comment, error) {
	var items []models.Comment
	if err := database.C.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return items, err
	}
	return items, nil
}

func GetComment(id uint, postID uint) (models.Comment, error) {
	var item models.Comment
	if err := database.C.
		Where("id = ? AND post_id = ?", id, postID).
		First(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

// NewComment stamps both the author and the parent post from context; the
// payload has no say in either.
func NewComment(author models.Account, post models.Post, text string) (models.Comment, error) {
	item := models.Comment{
		Text:     text,
		AuthorID: author.ID,
		PostID:   post.ID,
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("post", post.ID).Uint("author", author.ID).Msg("Created a new comment.")
	return item, nil
}

func EditComment(item models.Comment) (models.Comment, error) {
	err := database.C.Save(&item).Error
	return item, err
}

func DeleteComment(item models.Comment) error {
	return database.C.Delete(&item).Error
}
