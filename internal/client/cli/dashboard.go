package cli

import (
	"context"
	"fmt"

	"github.com/nextboard/boardcli/internal/usage"
)

// Dashboard fetches everything in one joined round and renders the summary
// the web dashboard's landing page shows: identity, plan, quota bar.
func (a *App) Dashboard(ctx context.Context) {
	a.userStore.FetchAll(ctx)
	snap := a.userStore.Snapshot()
	a.notifyStoreError(snap.Err)

	if snap.Profile != nil {
		_, _ = printlnFn("Account:", snap.Profile.Email, "("+string(snap.Profile.Role)+")")
	}

	if snap.Plan == nil {
		_, _ = printlnFn("No plan assigned")
	} else {
		printKV([][2]string{
			{"plan", snap.Plan.Name},
			{"quota", usage.FormatBytes(snap.Plan.QuotaBytes, 2)},
			{"reset period", string(snap.Plan.ResetPeriod)},
			{"base multiplier", fmt.Sprintf("x%.2f", snap.Plan.BaseMultiplier)},
			{"labels", labelNames(snap.Plan.Labels)},
		})
	}

	if snap.Usage != nil && snap.Plan != nil {
		pct := usage.CalculateUsagePercentage(
			snap.Usage.BillableBytesUp, snap.Usage.BillableBytesDown, snap.Plan.QuotaBytes)
		used := snap.Usage.BillableBytesUp + snap.Usage.BillableBytesDown
		_, _ = printlnFn(usageBar(pct))
		_, _ = printlnFn("Used", usage.FormatBytes(used, 2), "of", usage.FormatBytes(snap.Plan.QuotaBytes, 2))
	}

	_, _ = printlnFn(fmt.Sprintf("%d node(s) available", len(snap.Nodes)))
}
