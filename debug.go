package bower

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
)

// globalDebug enables tree warnings and build/frame diagnostics.
var globalDebug bool

// SetDebugMode toggles debug diagnostics and lowers the logger to debug
// level while enabled.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// debugCheckTreeDepth warns if the subtree under n nests deeper than the
// threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	if h := subtreeHeight(n); h > debugMaxTreeDepth {
		logger.Warn("tree nests too deep", "node", n, "height", h, "threshold", debugMaxTreeDepth)
	}
}

func subtreeHeight(n *Node) int {
	h := 0
	for _, c := range n.children {
		h = max(h, subtreeHeight(c))
	}
	return h + 1
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("node has many children", "node", n, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// RegistryStats counts registered nodes by kind.
type RegistryStats struct {
	Total     int
	Clickable int
	ByKind    map[NodeKind]int
}

// Stats summarizes the registry.
func (r *Registry) Stats() RegistryStats {
	st := RegistryStats{Total: len(r.nodes), ByKind: make(map[NodeKind]int)}
	for _, n := range r.nodes {
		st.ByKind[n.Kind]++
		if n.Clickable() {
			st.Clickable++
		}
	}
	return st
}

var dumpHeaderStyle = lipgloss.NewStyle().Bold(true)

// Dump renders the registry in paint order as a table: one row per node
// with its identity, kind, name, depth and folded box.
func (r *Registry) Dump() string {
	rows := make([][]string, 0, len(r.nodes))
	for _, n := range r.nodes {
		b := n.Box()
		click := ""
		if n.Clickable() {
			click = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(n.ID),
			n.Kind.String(),
			n.Name,
			strconv.Itoa(n.depth),
			fmt.Sprintf("%.4g,%.4g", b.X, b.Y),
			fmt.Sprintf("%.4gx%.4g", b.Width, b.Height),
			click,
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Kind", "Name", "Depth", "Pos", "Size", "Click").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return dumpHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.String()
}
