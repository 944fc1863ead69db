package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports editor persistence events through the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnSave(_ context.Context, path string, nodes, edges int, d time.Duration, err error) {
	h.persisted("save", path, nodes, edges, d, err)
}

func (h logHooks) OnLoad(_ context.Context, path string, nodes, edges int, d time.Duration, err error) {
	h.persisted("load", path, nodes, edges, d, err)
}

func (h logHooks) OnEdgeDropped(_ context.Context, path, edgeID string) {
	h.logger.Debug("edge dropped", "path", path, "edge", edgeID)
}

func (h logHooks) persisted(op, path string, nodes, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug(op+" finished with error", "path", path, "took", d.Round(time.Microsecond), "err", err)
		return
	}
	h.logger.Debug(op+" finished", "path", path, "nodes", nodes, "edges", edges, "took", d.Round(time.Microsecond))
}
