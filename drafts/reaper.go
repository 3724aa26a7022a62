package drafts

import (
	"log"
	"time"

	"shattak/config"

	"github.com/robfig/cron/v3"
)

// StartReaper drops draft sessions that have sat idle past the configured
// TTL. Runs hourly.
func StartReaper() {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		maxIdle := time.Duration(config.AppConfig.DraftTTLHours) * time.Hour
		if reaped := Sessions.Reap(maxIdle); reaped > 0 {
			log.Printf("Reaped %d idle draft sessions", reaped)
		}
	})
	if err != nil {
		log.Printf("Failed to schedule draft reaper: %v", err)
		return
	}

	c.Start()
	log.Println("Draft reaper started.")
}
