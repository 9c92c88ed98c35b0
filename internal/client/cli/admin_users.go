package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/client/stores"
)

func (a *App) AdminUsers(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	a.userPage = pageArg(args, a.userPage)
	a.renderUsers(ctx)
}

func (a *App) renderUsers(ctx context.Context) {
	a.adminStore.FetchUsers(ctx, a.userPage, stores.DefaultPageLimit)
	a.notifyStoreError(a.adminStore.Err())

	page := a.adminStore.Users()
	if page == nil {
		return
	}
	rows := make([][]string, 0, len(page.Data))
	for _, u := range page.Data {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Email,
			string(u.Role),
			formatMaybeInt(u.PlanID),
			formatMaybeInt(u.TelegramChatID),
			formatTime(u.CreatedAt),
		})
	}
	printTable([]string{"ID", "EMAIL", "ROLE", "PLAN", "TG CHAT", "CREATED"}, rows)
	_, _ = printlnFn(pageFooter(page.Pagination))
}

func (a *App) AddUser(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}

	email, err := GetSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return
	}

	req := models.CreateUserRequest{Email: email, Password: password}
	if planID, err := GetOptionalText(a.reader, "Plan id", os.Stdout); err == nil && planID != nil {
		if id, err := strconv.ParseInt(*planID, 10, 64); err == nil {
			req.PlanID = &id
		}
	}
	if role, err := GetOptionalText(a.reader, "Role (user/admin)", os.Stdout); err == nil && role != nil {
		req.Role = models.Role(*role)
	}

	if _, err := a.api.CreateUser(ctx, req); err != nil {
		_, _ = printlnFn("Create failed:", err.Error())
		return
	}
	a.renderUsers(ctx)
}

func (a *App) EditUser(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: edituser <id>")
		return
	}

	var req models.UpdateUserRequest
	if email, err := GetOptionalText(a.reader, "Email", os.Stdout); err == nil {
		req.Email = email
	}
	if planID, err := GetOptionalText(a.reader, "Plan id", os.Stdout); err == nil && planID != nil {
		if v, err := strconv.ParseInt(*planID, 10, 64); err == nil {
			req.PlanID = &v
		}
	}
	if banned, err := GetOptionalText(a.reader, "Banned (true/false)", os.Stdout); err == nil && banned != nil {
		if v, err := strconv.ParseBool(*banned); err == nil {
			req.Banned = &v
		}
	}

	if _, err := a.api.UpdateUser(ctx, id, req); err != nil {
		_, _ = printlnFn("Update failed:", err.Error())
		return
	}
	a.renderUsers(ctx)
}

func (a *App) DeleteUser(ctx context.Context, args []string) {
	if !a.requireAdmin() {
		return
	}
	id, ok := idArg(args)
	if !ok {
		_, _ = printlnFn("Usage: deluser <id>")
		return
	}
	if err := a.api.DeleteUser(ctx, id); err != nil {
		_, _ = printlnFn("Delete failed:", err.Error())
		return
	}
	a.renderUsers(ctx)
}
