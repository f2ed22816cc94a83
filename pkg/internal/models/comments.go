package models

type Comment struct {
	BaseModel

	Text string `json:"text"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	PostID uint  `json:"post_id"`
	Post   *Post `json:"post"`
}

func (v Comment) AuthoredBy() uint {
	return v.AuthorID
}
