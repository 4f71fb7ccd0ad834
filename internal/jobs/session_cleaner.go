package jobs

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"cobranza/internal/config"
	"cobranza/internal/repositories"
	"cobranza/internal/utils"
)

// SessionCleaner purges abandoned hand-off sessions. A session the phone
// never completed stays PENDING forever; past the TTL nothing is watching
// it anymore, so it gets deleted.
type SessionCleaner struct {
	Repo repositories.SessionRepository
	TTL  time.Duration
}

func (c SessionCleaner) Run() {
	cutoff := time.Now().Add(-c.TTL)
	n, err := c.Repo.DeleteStale(cutoff)
	if err != nil {
		utils.LogEvent("", "jobs", "session_cleanup", "error: "+err.Error())
		return
	}
	if n > 0 {
		utils.LogEvent("", "jobs", "session_cleanup", fmt.Sprintf("purged=%d ttl=%s", n, c.TTL))
	}
}

// StartScheduler wires the cleanup into a background scheduler and starts
// it. The returned scheduler should be stopped on shutdown.
func StartScheduler(env config.Env) *gocron.Scheduler {
	cleaner := SessionCleaner{Repo: repositories.SessionRepository{}, TTL: env.SessionTTL}

	s := gocron.NewScheduler(time.Local)
	s.Every(1).Hour().Do(cleaner.Run)
	s.StartAsync()
	return s
}
