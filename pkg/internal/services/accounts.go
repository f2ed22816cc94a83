package services

import (
	"context"
	"fmt"
	"time"

	localCache "chronicle/pkg/internal/cache"
	"chronicle/pkg/internal/database"
	"chronicle/pkg/internal/models"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"gorm.io/gorm/clause"
)

func GetAccountWithName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func viewerAccountCacheKey(name string) string {
	return fmt.Sprintf("viewer-account#%s", name)
}

// LoadViewerAccount materializes the identity behind a verified token into
// a local account row, creating or refreshing it as needed. Results are
// memoized for a short while since the same viewer hits us on every request.
func LoadViewerAccount(name, nick, email string) (models.Account, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if hit, err := marshal.Get(ctx, viewerAccountCacheKey(name), new(models.Account)); err == nil {
		return *hit.(*models.Account), nil
	}

	account := models.Account{
		Name:  name,
		Nick:  nick,
		Email: email,
	}

	if err := database.C.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"nick", "email"}),
	}).Create(&account).Error; err != nil {
		return account, err
	}

	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}

	_ = marshal.Set(
		ctx,
		viewerAccountCacheKey(name),
		account,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"viewer-account", fmt.Sprintf("account#%d", account.ID)}),
	)

	return account, nil
}

func FlushViewerAccount(name string) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	_ = marshal.Delete(context.Background(), viewerAccountCacheKey(name))
}

func EditAccount(account models.Account, nick, email, bio string) (models.Account, error) {
	account.Nick = nick
	account.Email = email
	account.Bio = bio

	if err := database.C.Save(&account).Error; err != nil {
		return account, err
	}

	FlushViewerAccount(account.Name)
	return account, nil
}
