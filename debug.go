package marquee

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// globalDebug is true while at least one Registry is in debug mode, so that
// node operations (which lack a Registry pointer) can check it cheaply.
var globalDebug bool

// debugRegistries counts the Registries with debug mode enabled.
var debugRegistries int

// debugLogger receives tree warnings while debug mode is on.
var debugLogger = discardLogger()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("marquee debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			"node", n.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn("child count exceeds threshold",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// debugf logs a gesture trace line at debug level when debug mode is on.
func (r *Registry) debugf(container *Node, msg string, args ...any) {
	if !r.debug {
		return
	}
	r.logger.Debug(msg, append([]any{"container", container.Name}, args...)...)
}

// debugEnabled reports whether the logger would emit debug records.
func (r *Registry) debugEnabled() bool {
	return r.debug && r.logger.Enabled(context.Background(), slog.LevelDebug)
}
