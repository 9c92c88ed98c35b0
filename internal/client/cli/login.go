package cli

import (
	"context"
	"os"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		_, _ = printlnFn("Login failed:", err.Error())
		return
	}
	_, _ = printlnFn("Login successful")
}

func (a *App) Register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "err", err)
		return
	}

	user, err := a.api.Register(ctx, email, password)
	if err != nil {
		_, _ = printlnFn("Registration failed:", err.Error())
		return
	}
	_, _ = printlnFn("Registered", user.Email, "- you can now log in")
}

func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	_, _ = printlnFn("Logged out")
}

func (a *App) Whoami(ctx context.Context) {
	if !a.isLoggedIn() {
		_, _ = printlnFn("Not logged in")
		return
	}

	rows := [][2]string{}
	if u := a.session.User(); u != nil {
		rows = append(rows,
			[2]string{"email", u.Email},
			[2]string{"role", string(u.Role)},
			[2]string{"member since", formatTime(u.CreatedAt)},
		)
	}
	if claims, err := a.session.Claims(); err == nil {
		rows = append(rows,
			[2]string{"token subject", claims.Subject},
			[2]string{"token expires", formatTime(claims.ExpiresAt)},
		)
	}
	printKV(rows)
}
