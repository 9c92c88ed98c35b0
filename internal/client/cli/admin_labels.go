package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/client/stores"
)

func (a *App) AdminLabels(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	a.labelPage = pageArg(args, a.labelPage)
	a.renderLabels(ctx)
}

func (a *App) renderLabels(ctx context.Context) {
	a.adminStore.FetchLabels(ctx, a.labelPage, stores.DefaultLabelLimit)
	a.notifyStoreError(a.adminStore.Err())

	page := a.adminStore.Labels()
	if page == nil {
		return
	}
	rows := make([][]string, 0, len(page.Data))
	for _, l := range page.Data {
		rows = append(rows, []string{
			strconv.FormatInt(l.ID, 10),
			l.Name,
			l.Description,
			fmt.Sprintf("x%.2f", l.Multiplier),
		})
	}
	printTable([]string{"ID", "NAME", "DESCRIPTION", "MULT"}, rows)
	_, _ = printlnFn(pageFooter(page.Pagination))
}

func (a *App) AddLabel(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}

	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return
	}
	mult, err := GetFloat(a.reader, "Multiplier", os.Stdout)
	if err != nil {
		_, _ = printlnFn("Invalid multiplier")
		return
	}

	req := models.CreateLabelRequest{Name: name, Description: description, Multiplier: mult}
	if _, err := a.api.CreateLabel(ctx, req); err != nil {
		_, _ = printlnFn("Create failed:", err.Error())
		return
	}
	a.renderLabels(ctx)
}

func (a *App) EditLabel(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: editlabel <id>")
		return
	}

	var req models.UpdateLabelRequest
	if name, err := GetOptionalText(a.reader, "Name", os.Stdout); err == nil {
		req.Name = name
	}
	if description, err := GetOptionalText(a.reader, "Description", os.Stdout); err == nil {
		req.Description = description
	}
	if mult, err := GetOptionalText(a.reader, "Multiplier", os.Stdout); err == nil && mult != nil {
		if v, err := strconv.ParseFloat(*mult, 64); err == nil {
			req.Multiplier = &v
		}
	}

	if _, err := a.api.UpdateLabel(ctx, id, req); err != nil {
		_, _ = printlnFn("Update failed:", err.Error())
		return
	}
	a.renderLabels(ctx)
}

func (a *App) DeleteLabel(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: dellabel <id>")
		return
	}
	if err := a.api.DeleteLabel(ctx, id); err != nil {
		_, _ = printlnFn("Delete failed:", err.Error())
		return
	}
	a.renderLabels(ctx)
}
