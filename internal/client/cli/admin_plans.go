package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/client/stores"
	"github.com/nextboard/boardcli/internal/usage"
)

func (a *App) AdminPlans(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	a.planPage = pageArg(args, a.planPage)
	a.renderPlans(ctx)
}

func (a *App) renderPlans(ctx context.Context) {
	a.adminStore.FetchPlans(ctx, a.planPage, stores.DefaultPageLimit)
	a.notifyStoreError(a.adminStore.Err())

	page := a.adminStore.Plans()
	if page == nil {
		return
	}
	rows := make([][]string, 0, len(page.Data))
	for _, p := range page.Data {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			usage.FormatBytes(p.QuotaBytes, 2),
			string(p.ResetPeriod),
			fmt.Sprintf("x%.2f", p.BaseMultiplier),
			labelNames(p.Labels),
		})
	}
	printTable([]string{"ID", "NAME", "QUOTA", "RESET", "MULT", "LABELS"}, rows)
	_, _ = printlnFn(pageFooter(page.Pagination))
}

func (a *App) AddPlan(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}

	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	quotaGB, err := GetFloat(a.reader, "Quota (GB)", os.Stdout)
	if err != nil {
		_, _ = printlnFn("Invalid quota")
		return
	}
	resetPeriod, err := GetSimpleText(a.reader, "Reset period (none/daily/weekly/monthly/yearly)", os.Stdout)
	if err != nil {
		return
	}
	mult, err := GetFloat(a.reader, "Base multiplier", os.Stdout)
	if err != nil {
		_, _ = printlnFn("Invalid multiplier")
		return
	}

	req := models.CreatePlanRequest{
		Name:           name,
		QuotaBytes:     usage.GBToBytes(quotaGB),
		ResetPeriod:    models.ResetPeriod(resetPeriod),
		BaseMultiplier: mult,
	}
	if ids, err := GetIDList(a.reader, "Label ids", os.Stdout); err == nil && len(ids) > 0 {
		req.LabelIDs = ids
	}

	if _, err := a.api.CreatePlan(ctx, req); err != nil {
		_, _ = printlnFn("Create failed:", err.Error())
		return
	}
	a.renderPlans(ctx)
}

func (a *App) EditPlan(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: editplan <id>")
		return
	}

	var req models.UpdatePlanRequest
	if name, err := GetOptionalText(a.reader, "Name", os.Stdout); err == nil {
		req.Name = name
	}
	if quota, err := GetOptionalText(a.reader, "Quota (GB)", os.Stdout); err == nil && quota != nil {
		if v, err := strconv.ParseFloat(*quota, 64); err == nil {
			b := usage.GBToBytes(v)
			req.QuotaBytes = &b
		}
	}
	if reset, err := GetOptionalText(a.reader, "Reset period", os.Stdout); err == nil && reset != nil {
		r := models.ResetPeriod(*reset)
		req.ResetPeriod = &r
	}
	if mult, err := GetOptionalText(a.reader, "Base multiplier", os.Stdout); err == nil && mult != nil {
		if v, err := strconv.ParseFloat(*mult, 64); err == nil {
			req.BaseMultiplier = &v
		}
	}

	if _, err := a.api.UpdatePlan(ctx, id, req); err != nil {
		_, _ = printlnFn("Update failed:", err.Error())
		return
	}
	a.renderPlans(ctx)
}

func (a *App) DeletePlan(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: delplan <id>")
		return
	}
	if err := a.api.DeletePlan(ctx, id); err != nil {
		_, _ = printlnFn("Delete failed:", err.Error())
		return
	}
	a.renderPlans(ctx)
}

// AssignPlanLabels replaces the plan's label set with the entered ids.
func (a *App) AssignPlanLabels(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: planlabels <id>")
		return
	}
	ids, err := GetIDList(a.reader, "Label ids", os.Stdout)
	if err != nil {
		_, _ = printlnFn("Invalid label ids")
		return
	}
	if err := a.api.AssignPlanLabels(ctx, id, ids); err != nil {
		_, _ = printlnFn("Assign failed:", err.Error())
		return
	}
	a.renderPlans(ctx)
}
