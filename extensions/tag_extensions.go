package extensions

import (
	"context"

	"github.com/Kotlang/publishGo/db"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// RecordTags bumps tag counters for a freshly created article.
func RecordTags(ctx context.Context, publishDb db.PublishDbInterface, tags []string) chan bool {
	savedTagsPromise := make(chan bool, 1)

	go func() {
		for _, tag := range tags {
			if err := publishDb.Tag().Record(ctx, tag); err != nil {
				logger.Error("Failed recording tag", zap.String("tag", tag), zap.Error(err))
			}
		}

		savedTagsPromise <- true
	}()

	return savedTagsPromise
}
