package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/client/stores"
)

func (a *App) AdminNodes(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	a.nodePage = pageArg(args, a.nodePage)
	a.renderNodes(ctx)
}

func (a *App) renderNodes(ctx context.Context) {
	a.adminStore.FetchNodes(ctx, a.nodePage, stores.DefaultPageLimit)
	a.notifyStoreError(a.adminStore.Err())

	page := a.adminStore.Nodes()
	if page == nil {
		return
	}
	rows := make([][]string, 0, len(page.Data))
	for _, n := range page.Data {
		rows = append(rows, []string{
			strconv.FormatInt(n.ID, 10),
			n.Name,
			n.NodeType,
			fmt.Sprintf("%s:%d", n.Host, n.Port),
			fmt.Sprintf("x%.2f", n.NodeMultiplier),
			string(n.Status),
			labelNames(n.Labels),
		})
	}
	printTable([]string{"ID", "NAME", "TYPE", "ADDRESS", "MULT", "STATUS", "LABELS"}, rows)
	_, _ = printlnFn(pageFooter(page.Pagination))
}

func (a *App) AddNode(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}

	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return
	}
	nodeType, err := GetSimpleText(a.reader, "Node type (e.g. vless, trojan)", os.Stdout)
	if err != nil {
		return
	}
	host, err := GetSimpleText(a.reader, "Host", os.Stdout)
	if err != nil {
		return
	}
	port, err := GetInt(a.reader, "Port", os.Stdout)
	if err != nil {
		_, _ = printlnFn("Invalid port")
		return
	}
	mult, err := GetFloat(a.reader, "Node multiplier", os.Stdout)
	if err != nil {
		_, _ = printlnFn("Invalid multiplier")
		return
	}

	req := models.CreateNodeRequest{
		Name:           name,
		NodeType:       nodeType,
		Host:           host,
		Port:           uint16(port),
		NodeMultiplier: mult,
	}
	if cfg, err := GetOptionalText(a.reader, "Protocol config (JSON)", os.Stdout); err == nil && cfg != nil {
		if !json.Valid([]byte(*cfg)) {
			_, _ = printlnFn("Invalid protocol config JSON")
			return
		}
		req.ProtocolConfig = json.RawMessage(*cfg)
	}
	if ids, err := GetIDList(a.reader, "Label ids", os.Stdout); err == nil && len(ids) > 0 {
		req.LabelIDs = ids
	}

	if _, err := a.api.CreateNode(ctx, req); err != nil {
		_, _ = printlnFn("Create failed:", err.Error())
		return
	}
	a.renderNodes(ctx)
}

func (a *App) EditNode(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: editnode <id>")
		return
	}

	var req models.UpdateNodeRequest
	if name, err := GetOptionalText(a.reader, "Name", os.Stdout); err == nil {
		req.Name = name
	}
	if host, err := GetOptionalText(a.reader, "Host", os.Stdout); err == nil {
		req.Host = host
	}
	if port, err := GetOptionalText(a.reader, "Port", os.Stdout); err == nil && port != nil {
		if v, err := strconv.ParseUint(*port, 10, 16); err == nil {
			p := uint16(v)
			req.Port = &p
		}
	}
	if mult, err := GetOptionalText(a.reader, "Node multiplier", os.Stdout); err == nil && mult != nil {
		if v, err := strconv.ParseFloat(*mult, 64); err == nil {
			req.NodeMultiplier = &v
		}
	}
	if status, err := GetOptionalText(a.reader, "Status (active/inactive)", os.Stdout); err == nil && status != nil {
		s := models.NodeStatus(*status)
		req.Status = &s
	}

	if _, err := a.api.UpdateNode(ctx, id, req); err != nil {
		_, _ = printlnFn("Update failed:", err.Error())
		return
	}
	a.renderNodes(ctx)
}

func (a *App) DeleteNode(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: delnode <id>")
		return
	}
	if err := a.api.DeleteNode(ctx, id); err != nil {
		_, _ = printlnFn("Delete failed:", err.Error())
		return
	}
	a.renderNodes(ctx)
}

// AssignNodeLabels replaces the node's label set with the entered ids.
func (a *App) AssignNodeLabels(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: nodelabels <id>")
		return
	}
	ids, err := GetIDList(a.reader, "Label ids", os.Stdout)
	if err != nil {
		_, _ = printlnFn("Invalid label ids")
		return
	}
	if err := a.api.AssignNodeLabels(ctx, id, ids); err != nil {
		_, _ = printlnFn("Assign failed:", err.Error())
		return
	}
	a.renderNodes(ctx)
}
