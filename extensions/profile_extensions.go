package extensions

import (
	"context"

	"github.com/Kotlang/publishGo/db"
	"github.com/Kotlang/publishGo/models"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// GetProfileAsync fetches a profile without blocking the caller. The channel
// yields nil when the user does not exist. The buffer lets the goroutine
// finish even when the caller errors out before receiving.
func GetProfileAsync(ctx context.Context, publishDb db.PublishDbInterface, userId string) chan *models.ProfileModel {
	profileChan := make(chan *models.ProfileModel, 1)

	go func() {
		profile, err := publishDb.Profile().FindById(ctx, userId)
		if err != nil {
			logger.Error("Failed fetching profile", zap.Error(err))
		}
		profileChan <- profile
	}()

	return profileChan
}
