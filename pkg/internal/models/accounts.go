package models

// Account is the local materialization of an identity managed elsewhere.
// Rows are created and refreshed from verified token claims, never through
// a registration flow of our own.
type Account struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex"`
	Nick  string `json:"nick"`
	Email string `json:"email"`
	Bio   string `json:"bio"`

	IsAdmin bool `json:"is_admin"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
