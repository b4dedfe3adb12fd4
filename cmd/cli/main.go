package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Enryuk3/kash-app/pkg/client"
	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	"github.com/Enryuk3/kash-app/pkg/money"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"
)

const usage = `Usage: kash <command> [arguments]

Commands:
  signup <name> <email>                       create an account
  signin <email>                              sign in
  signout                                     forget the stored session
  whoami                                      show the current session
  categories [income|expense]                 list categories
  add-category <name> <income|expense>        create a category
  transactions [income|expense]               list transactions
  add <income|expense> <amount> <category> <YYYY-MM-DD> <description...>
  remove <transaction_id>                     delete a transaction
  summary                                     income, expense and balance
  goals                                       list savings goals

The API address is read from KASH_URL (default http://localhost:3000).`

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, red("error:"), err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	baseURL := os.Getenv("KASH_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	c, err := client.New(baseURL)
	if err != nil {
		return err
	}
	if token, err := loadToken(); err == nil {
		c.SetToken(token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case "signup":
		if len(args) < 2 {
			return errors.New("usage: signup <name> <email>")
		}
		password, err := readPassword()
		if err != nil {
			return err
		}
		view, err := c.SignUp(ctx, args[0], args[1], password)
		if err != nil {
			return describe(err)
		}
		return saveSession(view)
	case "signin":
		if len(args) < 1 {
			return errors.New("usage: signin <email>")
		}
		password, err := readPassword()
		if err != nil {
			return err
		}
		view, err := c.SignIn(ctx, args[0], password)
		if err != nil {
			return describe(err)
		}
		return saveSession(view)
	case "signout":
		_ = c.SignOut(ctx)
		path, err := tokenPath()
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		fmt.Println(green("Signed out"))
	case "whoami":
		view, err := c.Session(ctx)
		if err != nil {
			return describe(err)
		}
		if view.User == nil {
			fmt.Println(faint("Not signed in"))
			return nil
		}
		fmt.Printf("%s <%s>, session expires %s\n", bold(view.User.Name), view.User.Email,
			view.Session.ExpiresAt.Local().Format(time.RFC1123))
	case "categories":
		store := client.NewCategoryStore(c)
		if err := store.Load(ctx); err != nil {
			return describe(err)
		}
		list := store.All()
		if len(args) > 0 {
			list = store.ByType(domain.EntryType(args[0]))
		}
		for _, cat := range list {
			fmt.Printf("%-8s %s\n", typeLabel(cat.Type), cat.Name)
		}
	case "add-category":
		if len(args) < 2 {
			return errors.New("usage: add-category <name> <income|expense>")
		}
		created, err := client.NewCategoryStore(c).Create(ctx, args[0], domain.EntryType(args[1]))
		if err != nil {
			return describe(err)
		}
		fmt.Println(green("Created category"), created.Name)
	case "transactions":
		kind := domain.EntryType("")
		if len(args) > 0 {
			kind = domain.EntryType(args[0])
		}
		list, err := c.Transactions(ctx, kind)
		if err != nil {
			return describe(err)
		}
		for _, t := range list {
			printTransaction(t)
		}
	case "add":
		return addTransaction(ctx, c, args)
	case "remove":
		if len(args) < 1 {
			return errors.New("usage: remove <transaction_id>")
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid transaction id: %w", err)
		}
		if err := c.DeleteTransaction(ctx, id); err != nil {
			return describe(err)
		}
		fmt.Println(green("Removed"), id)
	case "summary":
		store := client.NewTransactionStore(c)
		if err := store.Load(ctx); err != nil {
			return describe(err)
		}
		totals := store.Totals()
		fmt.Printf("Income:  %s\n", green(totals.Income.String()))
		fmt.Printf("Expense: %s\n", red(totals.Expense.String()))
		fmt.Printf("Balance: %s\n", bold(totals.Balance.String()))
	case "goals":
		goals, err := c.Goals(ctx)
		if err != nil {
			return describe(err)
		}
		for _, g := range goals {
			printGoal(g)
		}
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func addTransaction(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 5 {
		return errors.New("usage: add <income|expense> <amount> <category> <YYYY-MM-DD> <description...>")
	}
	kind := domain.EntryType(args[0])
	amount, err := money.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	categories := client.NewCategoryStore(c)
	transactions := client.NewTransactionStore(c)
	if err := client.LoadAll(ctx, categories, transactions); err != nil {
		return describe(err)
	}
	var categoryID uuid.UUID
	for _, cat := range categories.ByType(kind) {
		if strings.EqualFold(cat.Name, args[2]) {
			categoryID = cat.ID
		}
	}
	if categoryID == uuid.Nil {
		return fmt.Errorf("no %s category named %q", kind, args[2])
	}

	created, err := transactions.Add(ctx, client.NewTransaction{
		Type:        string(kind),
		Amount:      amount,
		Description: strings.Join(args[4:], " "),
		Date:        args[3],
		CategoryID:  categoryID,
	})
	if err != nil {
		return describe(err)
	}
	printTransaction(created)
	fmt.Println(faint("Balance:"), bold(transactions.Totals().Balance.String()))
	return nil
}

func printTransaction(t *dto.TransactionRead) {
	name := ""
	if t.Category != nil {
		name = t.Category.Name
	}
	amount := t.Amount.String()
	if t.Type == domain.EntryTypeIncome {
		amount = green("+" + amount)
	} else {
		amount = red("-" + amount)
	}
	fmt.Printf("%s  %s  %-12s %-16s %s\n", faint(t.ID.String()[:8]), t.Date.Format(time.DateOnly), amount, name, t.Description)
}

func printGoal(g *dto.GoalRead) {
	state := faint("open")
	if g.IsCompleted {
		state = green("done")
	}
	due := ""
	if g.TargetDate != nil {
		due = "by " + g.TargetDate.Format(time.DateOnly)
	}
	fmt.Printf("%s %-20s %s / %s %s\n", state, bold(g.Name), g.CurrentAmount.String(), g.TargetAmount.String(), due)
}

func typeLabel(t domain.EntryType) string {
	if t == domain.EntryTypeIncome {
		return green(string(t))
	}
	return red(string(t))
}

// describe flattens an API error into a single readable line.
func describe(err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	msg := apiErr.Title
	if apiErr.Detail != "" {
		msg += ": " + apiErr.Detail
	}
	if len(apiErr.Errors) > 0 {
		fields := make([]string, 0, len(apiErr.Errors))
		for f, m := range apiErr.Errors {
			fields = append(fields, f+" "+m)
		}
		msg += " (" + strings.Join(fields, ", ") + ")"
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		msg += "; run `kash signin <email>` first"
	}
	return errors.New(msg)
}

func readPassword() (string, error) {
	fmt.Print("Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		return string(b), err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func tokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kash", "session"), nil
}

func loadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func saveSession(view *dto.SessionView) error {
	if view.Session == nil || view.Session.Token == "" {
		return errors.New("server did not return a session")
	}
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(view.Session.Token), 0o600); err != nil {
		return err
	}
	fmt.Println(green("Signed in as"), bold(view.User.Name))
	return nil
}
