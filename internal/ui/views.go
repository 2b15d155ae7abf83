package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sugarstack/sweetshop-cli/internal/api"
	"github.com/sugarstack/sweetshop-cli/internal/guard"
	"github.com/sugarstack/sweetshop-cli/internal/models"
	"github.com/sugarstack/sweetshop-cli/internal/models/dto"
)

func (a *App) renderLogin(ctx context.Context) {
	a.flushToasts()
	fmt.Fprintln(a.out, "\n== Sweet Shop — Login ==")

	email := a.prompt("Email (blank to register, 'q' to quit): ")
	if a.quit {
		return
	}
	switch email {
	case "q":
		a.quit = true
		return
	case "":
		a.view = guard.ViewRegister
		return
	}

	password := a.promptPassword("Password: ")
	identity, err := a.sessions.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.toasts.Error(api.Message(err, "Login failed"))
		return
	}

	a.toasts.Success(fmt.Sprintf("Welcome, %s!", identity.Name))
	a.view = guard.ViewCatalog
}

func (a *App) renderRegister(ctx context.Context) {
	a.flushToasts()
	fmt.Fprintln(a.out, "\n== Sweet Shop — Register ==")

	name := a.prompt("Name (blank to go back): ")
	if a.quit {
		return
	}
	if name == "" {
		a.view = guard.ViewLogin
		return
	}
	email := a.prompt("Email: ")
	password := a.promptPassword("Password: ")
	role := a.prompt("Role (blank for default): ")

	identity, err := a.sessions.Register(ctx, dto.RegisterRequest{Name: name, Email: email, Password: password, Role: role})
	if err != nil {
		a.toasts.Error(api.Message(err, "Registration failed"))
		return
	}

	a.toasts.Success(fmt.Sprintf("Welcome, %s!", identity.Name))
	a.view = guard.ViewCatalog
}

func (a *App) renderCatalog(ctx context.Context) {
	a.sweets.ListAll(ctx)

	for a.view == guard.ViewCatalog && !a.quit {
		if err := ctx.Err(); err != nil {
			return
		}
		a.flushToasts()

		identity, _ := a.sessions.Identity()
		a.printHeader(identity)
		sweets := a.sweets.Sweets()
		a.printSweets(sweets)
		a.printCatalogHelp(identity)

		line := a.prompt("> ")
		if a.quit {
			return
		}
		a.handleCatalogCommand(ctx, line, sweets, identity)
	}
}

func (a *App) handleCatalogCommand(ctx context.Context, line string, sweets []models.Sweet, identity models.Identity) {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "":
		// Just re-render.
	case "/":
		a.sweets.Search(ctx, arg)
	case "c":
		a.sweets.ListAll(ctx)
	case "r":
		a.sweets.ListAll(ctx)
	case "b":
		sweet, ok := pickSweet(sweets, arg)
		if !ok {
			a.toasts.Warning("No sweet with that number")
			return
		}
		if !sweet.InStock() {
			a.toasts.Warning(fmt.Sprintf("%s is out of stock", sweet.Name))
			return
		}
		a.sweets.Purchase(ctx, sweet.ID, sweet.Name)
	case "a":
		a.view = guard.ViewAddSweet
	case "e":
		if !identity.IsAdmin() {
			a.toasts.Warning("Only admins can edit sweets")
			return
		}
		sweet, ok := pickSweet(sweets, arg)
		if !ok {
			a.toasts.Warning("No sweet with that number")
			return
		}
		a.editing = &sweet
		a.view = guard.ViewEditSweet
	case "d":
		if !identity.IsAdmin() {
			a.toasts.Warning("Only admins can delete sweets")
			return
		}
		sweet, ok := pickSweet(sweets, arg)
		if !ok {
			a.toasts.Warning("No sweet with that number")
			return
		}
		if !a.confirm(fmt.Sprintf("Are you sure you want to delete %q?", sweet.Name)) {
			return
		}
		a.sweets.Delete(ctx, sweet.ID, sweet.Name)
	case "x":
		a.sessions.Logout(ctx)
		a.view = guard.ViewLogin
	case "q":
		a.quit = true
	default:
		a.toasts.Warning(fmt.Sprintf("Unknown command %q", command))
	}
}

func (a *App) renderAddSweet(ctx context.Context) {
	a.flushToasts()
	fmt.Fprintln(a.out, "\n== Add Sweet (Admin) ==")
	fmt.Fprintln(a.out, "Blank name cancels.")

	name := a.prompt("Sweet name: ")
	if a.quit {
		return
	}
	if name == "" {
		a.view = guard.ViewCatalog
		return
	}
	input := dto.SweetInput{
		Name:     name,
		Category: a.prompt("Category: "),
		Price:    parsePrice(a.prompt("Price: ")),
		Quantity: parseQuantity(a.prompt("Quantity in stock: ")),
	}

	if err := a.sweets.Create(ctx, input); err != nil {
		// Toast already pushed; the form stays open for correction.
		return
	}
	a.navigate(guard.ViewCatalog, a.cfg.NavigateDelay)
}

func (a *App) renderEditSweet(ctx context.Context) {
	if a.editing == nil {
		a.view = guard.ViewCatalog
		return
	}
	a.flushToasts()
	sweet := *a.editing
	fmt.Fprintf(a.out, "\n== Edit %s ==\n", sweet.Name)
	fmt.Fprintln(a.out, "Enter keeps the current value; 'cancel' abandons the edit.")

	name := a.promptDefault("Name", sweet.Name)
	if a.quit {
		return
	}
	if name == "cancel" {
		a.editing = nil
		a.view = guard.ViewCatalog
		return
	}
	input := dto.SweetInput{
		Name:     name,
		Category: a.promptDefault("Category", sweet.Category),
		Price:    parsePrice(a.promptDefault("Price", strconv.FormatFloat(sweet.Price, 'f', -1, 64))),
		Quantity: parseQuantity(a.promptDefault("Quantity", strconv.Itoa(sweet.Quantity))),
	}

	if err := a.sweets.Update(ctx, sweet.ID, input); err != nil {
		// Form stays open for correction.
		return
	}
	a.editing = nil
	a.view = guard.ViewCatalog
}

func (a *App) printHeader(identity models.Identity) {
	badge := ""
	if identity.IsAdmin() {
		badge = " (admin)"
	}
	fmt.Fprintf(a.out, "\n== Sweet Shop — welcome, %s%s ==\n", identity.Name, badge)
}

func (a *App) printSweets(sweets []models.Sweet) {
	if len(sweets) == 0 {
		fmt.Fprintln(a.out, "No sweets available.")
		return
	}
	for i, s := range sweets {
		stock := fmt.Sprintf("%d in stock", s.Quantity)
		if !s.InStock() {
			stock = "OUT OF STOCK"
		}
		fmt.Fprintf(a.out, "%3d. %-24s %-14s %8.2f  %s\n", i+1, s.Name, s.Category, s.Price, stock)
	}
}

func (a *App) printCatalogHelp(identity models.Identity) {
	help := "/ <text> search | c clear search | r refresh | b <n> buy | x logout | q quit"
	if identity.IsAdmin() {
		help += " | a add | e <n> edit | d <n> delete"
	}
	fmt.Fprintln(a.out, help)
}

// pickSweet resolves a 1-based list index typed by the user.
func pickSweet(sweets []models.Sweet, arg string) (models.Sweet, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(sweets) {
		return models.Sweet{}, false
	}
	return sweets[n-1], true
}

// parsePrice returns nil for unparseable input so validation reports it as
// missing rather than silently coercing to zero.
func parsePrice(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseQuantity(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}
