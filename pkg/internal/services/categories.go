package services

import (
	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/models"

	"gorm.io/gorm"
)

func ListCategory(take int, offset int) ([]models.Category, error) {
	var categories []models.Category
	err := database.C.
		Where("is_published = ?", true).
		Offset(offset).Limit(take).
		Find(&categories).Error

	return categories, err
}

func GetCategory(slug string) (models.Category, error) {
	var category models.Category
	if err := database.C.Where("slug = ?", slug).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

// GetPublishedCategory resolves a category for public, scoped listings.
// An unpublished category is as good as a missing one out there.
func GetPublishedCategory(slug string) (models.Category, error) {
	var category models.Category
	if err := database.C.
		Where("slug = ? AND is_published = ?", slug, true).
		First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func GetCategoryWithID(id uint) (models.Category, error) {
	var category models.Category
	if err := database.C.Where("id = ?", id).First(&category).Error; err != nil {
		return category, err
	}
	return category, nil
}

func NewCategory(slug, title, description string, isPublished bool) (models.Category, error) {
	category := models.Category{
		Slug:        slug,
		Title:       title,
		Description: description,
		IsPublished: isPublished,
	}

	err := database.C.Save(&category).Error

	return category, err
}

func EditCategory(category models.Category, slug, title, description string, isPublished bool) (models.Category, error) {
	category.Slug = slug
	category.Title = title
	category.Description = description
	category.IsPublished = isPublished

	err := database.C.Save(&category).Error

	return category, err
}

// DeleteCategory detaches every referencing post before the category row
// goes away; the posts themselves survive.
func DeleteCategory(category models.Category) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
