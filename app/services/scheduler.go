package services

import (
	"log"
	"time"

	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/storage"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(store storage.Store) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 5:00 PM (17:00)
			if now.Hour() == 17 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [17:00]...")

				if err := LogUnrecordedGroups(store, now.Format("2006-01-02")); err != nil {
					log.Printf("Error checking unrecorded groups: %v", err)
				}
			}
		}
	}()
}

// LogUnrecordedGroups logs every group with no attendance record for the
// given date. Log-only; nothing is written back.
func LogUnrecordedGroups(store storage.Store, date string) error {
	groups, err := database.GetGroups(store)
	if err != nil {
		return err
	}
	attendance, err := database.GetAttendance(store)
	if err != nil {
		return err
	}

	recorded := make(map[int]bool)
	for _, r := range attendance {
		if r.Date == date {
			recorded[r.GroupID] = true
		}
	}

	for _, g := range groups {
		if !recorded[g.ID] {
			log.Printf("Group %v (id %d) has no attendance recorded for %s", g.Number, g.ID, date)
		}
	}
	return nil
}
