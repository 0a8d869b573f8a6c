package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jsonapi/pkg/observability"
)

// logHooks reports cache and HTTP events through the CLI logger at debug
// level. It is registered once per invocation, so --verbose surfaces
// cache hits and outgoing requests.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.CacheHooks = (*logHooks)(nil)
	_ observability.HTTPHooks  = (*logHooks)(nil)
)

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debugf("cache hit (%s)", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debugf("cache miss (%s)", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debugf("cache store (%s, %d bytes)", keyType, size)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debugf("-> %s %s%s", method, host, path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, statusCode int, duration time.Duration) {
	h.logger.Debugf("<- %s %s%s %d (%s)", method, host, path, statusCode, duration.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debugf("!! %s %s%s: %v", method, host, path, err)
}
