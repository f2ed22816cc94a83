package services

import "chronicle/pkg/internal/models"

// Authored is any persisted record that carries an owning author.
type Authored interface {
	AuthoredBy() uint
}

// CanMutate is the entire write-authorization model: only the owning
// author may edit or delete a record, anonymous viewers may mutate
// nothing. Callers that get a false back are expected to answer with a
// redirect to the related read view instead of a permission error.
func CanMutate(viewer *models.Account, record Authored) bool {
	return viewer != nil && record.AuthoredBy() == viewer.ID
}
