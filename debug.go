package grove

import (
	"fmt"
	"os"
)

// warnf reports an invalid-reference mutation or a recovered listener panic.
// Always logged: these indicate a caller bug, but never interrupt a traversal.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[grove] warning: "+format+"\n", args...)
}

// noticef reports a redundant mutation that was absorbed as a no-op.
func noticef(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[grove] notice: "+format+"\n", args...)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed node
// is used in a tree operation. Only called when debug mode is on; in release
// mode callers skip this entirely.
func debugCheckDestroyed(n *Node, op string) {
	if n.destroyed {
		panic(fmt.Sprintf("grove debug: %s on destroyed node %q (ID %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		warnf("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		warnf("node %q has %d children (threshold %d)", n.Name, len(n.children), debugMaxChildCount)
	}
}
