package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// getStatus renders the prompt suffix: the logged-in identity and role.
func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Email + " " + string(u.Role)
	} else if a.isLoggedIn() {
		s = "authenticated"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root starts the read-eval-print loop.
//
// The prompt shows the current identity and accepts commands; unknown
// commands are reported back. The loop exits on EOF or "exit"/"quit".
func (a *App) Root(ctx context.Context) {

	_, _ = printlnFn("Welcome to boardcli (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if a.isLoggedIn() {
		// Restore the profile for a session hydrated from disk.
		a.session.FetchUser(ctx)
	}

	for {
		fmt.Printf("board %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "login":
			a.Login(ctx)
		case "register":
			a.Register(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.Whoami(ctx)

		case "dashboard":
			a.Dashboard(ctx)
		case "nodes":
			a.Nodes(ctx)
		case "share":
			a.Share(ctx, args)
		case "usage":
			a.Usage(ctx)
		case "refresh":
			a.userStore.FetchAll(ctx)
			a.notifyStoreError(a.userStore.Snapshot().Err)
		case "link-telegram":
			a.LinkTelegram(ctx)

		case "users":
			a.AdminUsers(ctx, args)
		case "adduser":
			a.AddUser(ctx)
		case "edituser":
			a.EditUser(ctx, args)
		case "deluser":
			a.DeleteUser(ctx, args)

		case "anodes":
			a.AdminNodes(ctx, args)
		case "addnode":
			a.AddNode(ctx)
		case "editnode":
			a.EditNode(ctx, args)
		case "delnode":
			a.DeleteNode(ctx, args)
		case "nodelabels":
			a.AssignNodeLabels(ctx, args)

		case "plans":
			a.AdminPlans(ctx, args)
		case "addplan":
			a.AddPlan(ctx)
		case "editplan":
			a.EditPlan(ctx, args)
		case "delplan":
			a.DeletePlan(ctx, args)
		case "planlabels":
			a.AssignPlanLabels(ctx, args)

		case "labels":
			a.AdminLabels(ctx, args)
		case "addlabel":
			a.AddLabel(ctx)
		case "editlabel":
			a.EditLabel(ctx, args)
		case "dellabel":
			a.DeleteLabel(ctx, args)

		case "exit", "quit":
			_, _ = printlnFn("Bye!")
			return
		default:
			_, _ = printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if !a.isLoggedIn() {
		_, _ = printlnFn("Available commands: login, register, exit")
		return
	}
	_, _ = printlnFn("Available commands: dashboard, nodes, share <n>, usage, refresh, link-telegram, whoami, logout, exit")
	if a.isAdmin() {
		_, _ = printlnFn("Admin: users|anodes|plans|labels [page], adduser, edituser <id>, deluser <id>,")
		_, _ = printlnFn("       addnode, editnode <id>, delnode <id>, nodelabels <id>,")
		_, _ = printlnFn("       addplan, editplan <id>, delplan <id>, planlabels <id>,")
		_, _ = printlnFn("       addlabel, editlabel <id>, dellabel <id>")
	}
}

// notifyStoreError surfaces a store's recorded error as a transient notice.
func (a *App) notifyStoreError(msg string) {
	if msg != "" {
		_, _ = printlnFn("! " + msg)
	}
}
