// The worker runs the housekeeping jobs (suggestion-history retention and
// cache marker cleanup) out of the API process.
package main

import (
	"context"
	"log"

	"github.com/webcode-studio/studio-backend/config"
	"github.com/webcode-studio/studio-backend/internal/bootstrap"
	cronjob "github.com/webcode-studio/studio-backend/internal/housekeeping/cron"
	"github.com/webcode-studio/studio-backend/internal/storage/postgres"
	suggrepo "github.com/webcode-studio/studio-backend/internal/suggestions/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer pool.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("open redis: %v", err)
	}
	defer rdb.Close()

	scheduler := cronjob.NewScheduler(
		suggrepo.NewHistoryRepository(pool),
		suggrepo.NewCacheRepository(rdb),
	)
	scheduler.Start()

	select {}
}
