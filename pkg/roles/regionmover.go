package roles

import (
	"strconv"
	"strings"
	"time"

	"github.com/alessio/shellescape"
)

const (
	defaultRegionMoverTimeout = 59 * time.Minute
	// the region mover has to finish this long before the pod is killed
	regionMoverDeltaToShutdown = time.Minute
)

// regionMoverTimeout keeps the region mover within the graceful shutdown
// period of the pod.
func regionMoverTimeout(gracefulShutdown *time.Duration) time.Duration {
	if gracefulShutdown == nil {
		return defaultRegionMoverTimeout
	}
	if *gracefulShutdown <= regionMoverDeltaToShutdown {
		return *gracefulShutdown
	}
	return *gracefulShutdown - regionMoverDeltaToShutdown
}

// RegionMoverArgs excludes --regionserverhost, which is only known inside
// the pod and added by the start script.
func (c *RegionServerConfig) RegionMoverArgs() string {
	if !c.regionMover.RunBeforeShutdown {
		return ""
	}
	timeout := regionMoverTimeout(&c.gracefulShutdownTimeout)
	args := []string{
		"--maxthreads", strconv.Itoa(int(c.regionMover.MaxThreads)),
		"--timeout", strconv.FormatInt(int64(timeout/time.Second), 10),
	}
	if !c.regionMover.Ack {
		args = append(args, "--noack")
	}
	for _, opt := range c.regionMover.AdditionalMoverOptions {
		args = append(args, shellescape.Quote(opt))
	}
	return strings.Join(args, " ")
}
