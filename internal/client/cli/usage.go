package cli

import (
	"context"

	"github.com/nextboard/boardcli/internal/usage"
)

// Usage renders the current-period traffic snapshot: real vs. billable
// counters and, if a plan is known, the quota bar.
func (a *App) Usage(ctx context.Context) {
	a.userStore.FetchUsage(ctx)
	a.userStore.FetchPlan(ctx)
	snap := a.userStore.Snapshot()
	a.notifyStoreError(snap.Err)

	if snap.Usage == nil {
		_, _ = printlnFn("No usage data available")
		return
	}

	u := snap.Usage
	printKV([][2]string{
		{"period", formatTime(u.PeriodStart) + " .. " + formatTime(u.PeriodEnd)},
		{"real up", usage.FormatBytes(u.RealBytesUp, 2)},
		{"real down", usage.FormatBytes(u.RealBytesDown, 2)},
		{"billable up", usage.FormatBytes(u.BillableBytesUp, 2)},
		{"billable down", usage.FormatBytes(u.BillableBytesDown, 2)},
	})

	if snap.Plan != nil {
		pct := usage.CalculateUsagePercentage(u.BillableBytesUp, u.BillableBytesDown, snap.Plan.QuotaBytes)
		_, _ = printlnFn(usageBar(pct))
	}
}
