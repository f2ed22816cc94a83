package models

import "time"

type Post struct {
	BaseModel

	Title string `json:"title"`
	Text  string `json:"text"`

	// Opaque reference into the external media store, may be empty.
	Image string `json:"image"`

	// PubDate may sit in the future for scheduled publication.
	PubDate     time.Time `json:"pub_date"`
	IsPublished bool      `json:"is_published"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	LocationID *uint     `json:"location_id"`
	Location   *Location `json:"location"`

	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	// Live aggregate attached by the listing queries, never persisted.
	CommentCount int64 `json:"comment_count" gorm:"-"`
}

func (v Post) AuthoredBy() uint {
	return v.AuthorID
}

// PubliclyVisible reports whether the post is readable by anyone who is
// not its author. Requires Category to be preloaded when one is set; a
// missing category acts as no restriction at all.
func (v Post) PubliclyVisible(moment time.Time) bool {
	if !v.IsPublished || v.PubDate.After(moment) {
		return false
	}
	if v.CategoryID != nil && v.Category != nil && !v.Category.IsPublished {
		return false
	}
	return true
}
