package models

type Location struct {
	BaseModel

	Name        string `json:"name"`
	IsPublished bool   `json:"is_published"`

	Posts []Post `json:"posts" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
}
