package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nextboard/boardcli/internal/nodeuri"
)

// Nodes lists the nodes visible to the current user.
func (a *App) Nodes(ctx context.Context) {
	a.userStore.FetchNodes(ctx)
	snap := a.userStore.Snapshot()
	a.notifyStoreError(snap.Err)

	rows := make([][]string, 0, len(snap.Nodes))
	for i, n := range snap.Nodes {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			n.Name,
			n.NodeType,
			fmt.Sprintf("%s:%d", n.Host, n.Port),
			fmt.Sprintf("x%.2f", n.NodeMultiplier),
			string(n.Status),
			labelNames(n.Labels),
		})
	}
	printTable([]string{"#", "NAME", "TYPE", "ADDRESS", "MULT", "STATUS", "LABELS"}, rows)
}

// Share prints the configuration URI for the n-th node of the last listing.
func (a *App) Share(ctx context.Context, args []string) {
	if len(args) == 0 {
		_, _ = printlnFn("Usage: share <n>")
		return
	}

	snap := a.userStore.Snapshot()
	if len(snap.Nodes) == 0 {
		a.userStore.FetchNodes(ctx)
		snap = a.userStore.Snapshot()
		a.notifyStoreError(snap.Err)
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(snap.Nodes) {
		_, _ = printlnFn("No such node; run 'nodes' first")
		return
	}
	_, _ = printlnFn(nodeuri.Encode(snap.Nodes[n-1]))
}
