// Package log contains the log outputs the elemx command can be configured
// with beyond the standard streams.
package log

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// AsyncHook is a logrus hook that writes in the background until the context
// given to Listen is done.
type AsyncHook interface {
	logrus.Hook
	Listen(ctx context.Context)
}

// parseLevels returns level and every more severe level.
func parseLevels(level string) ([]logrus.Level, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %s", level) // specifically use a custom error
	}
	index := sort.Search(len(logrus.AllLevels), func(i int) bool {
		return logrus.AllLevels[i] > lvl
	})

	return logrus.AllLevels[:index], nil
}
