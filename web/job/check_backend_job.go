// Package job contains background jobs scheduled by the web server's cron.
package job

import (
	"context"
	"time"

	"github.com/discorre/cyberbank-panel/backend"
	"github.com/discorre/cyberbank-panel/logger"
	"github.com/discorre/cyberbank-panel/util/common"
	"github.com/discorre/cyberbank-panel/web/global"
)

// CheckBackendJob periodically pings the incident backend and logs
// reachability transitions. Screens still fail independently; this only
// gives operators an early signal.
type CheckBackendJob struct {
	client *backend.Client

	wasDown bool
}

func NewCheckBackendJob(client *backend.Client) *CheckBackendJob {
	return &CheckBackendJob{client: client}
}

func (j *CheckBackendJob) Run() {
	defer common.Recover("check backend job")

	// derive from the server context so a shutdown cancels an in-flight ping
	base := context.Background()
	if server := global.GetWebServer(); server != nil {
		base = server.GetCtx()
	}
	ctx, cancel := context.WithTimeout(base, 10*time.Second)
	defer cancel()

	if err := j.client.Ping(ctx); err != nil {
		if !j.wasDown {
			logger.Warning("incident backend unreachable:", err)
		}
		j.wasDown = true
		return
	}

	if j.wasDown {
		logger.Infof("incident backend reachable again: %s", j.client.BaseURL())
	}
	j.wasDown = false
}
