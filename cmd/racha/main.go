package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/Joaolrm/racha-do-mes-fe/internal/api"
	"github.com/Joaolrm/racha-do-mes-fe/internal/auth"
	"github.com/Joaolrm/racha-do-mes-fe/internal/balance"
	"github.com/Joaolrm/racha-do-mes-fe/internal/bill"
	"github.com/Joaolrm/racha-do-mes-fe/internal/config"
	"github.com/Joaolrm/racha-do-mes-fe/internal/invite"
	"github.com/Joaolrm/racha-do-mes-fe/internal/logger"
	"github.com/Joaolrm/racha-do-mes-fe/internal/payment"
	"github.com/Joaolrm/racha-do-mes-fe/internal/session"
	"github.com/Joaolrm/racha-do-mes-fe/internal/user"
	"github.com/Joaolrm/racha-do-mes-fe/pkg/format"
)

const usage = `usage: racha <command> [arguments]

  login <email-or-phone> <password>
  register <name> <email> <phone> <password>
  logout
  bills [month year]
  create-bill [flags]          (see create-bill -h)
  delete-bill <bill-id>
  edit-value <bill-id> <month> <year> <value>
  pay <bill-id> <month> <year> <value> [receipt-file]
  credits
  credit <debtor-id>
  confirm <debtor-id> [value]
  debts
  debt <creditor-id>
  invites
  respond <bill-id> accepted|rejected
`

// app bundles the wired services for command handlers
type app struct {
	session  *session.Session
	auth     *auth.Service
	users    *user.Service
	bills    *bill.Service
	resolver *payment.Resolver
	payments *payment.Service
	balances *balance.Service
	invites  *invite.Service
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "loaded configuration from .env")
	}

	log := logger.GetLogger()
	defer logger.Sync()

	cfg := config.Load()

	sess, err := session.Load(cfg.SessionFile)
	if err != nil {
		log.Fatalw("failed to load session", "error", err)
	}

	client := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, sess, log)

	// Auth feature
	authRepo := auth.NewRepository(client)
	authService := auth.NewService(authRepo, sess)

	// User feature
	userRepo := user.NewRepository(client)
	userService := user.NewService(userRepo)

	// Bill feature
	billRepo := bill.NewRepository(client)
	billService := bill.NewService(billRepo, log)

	// Payment feature (resolver backed by the bill-values lookup)
	paymentRepo := payment.NewRepository(client)
	paymentService := payment.NewService(paymentRepo, log)
	resolver := payment.NewResolver(billRepo, log)

	// Balance feature
	balanceRepo := balance.NewRepository(client)
	balanceService := balance.NewService(balanceRepo, log)

	// Invite feature
	inviteRepo := invite.NewRepository(client)
	inviteService := invite.NewService(inviteRepo, log)

	a := &app{
		session:  sess,
		auth:     authService,
		users:    userService,
		bills:    billService,
		resolver: resolver,
		payments: paymentService,
		balances: balanceService,
		invites:  inviteService,
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	if a.session.Expired(time.Now()) {
		fmt.Fprintln(os.Stderr, "session expired, please login again")
	}

	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		return a.auth.Logout()
	case "bills":
		return a.listBills(ctx, args)
	case "create-bill":
		return a.createBill(ctx, args)
	case "delete-bill":
		return a.deleteBill(ctx, args)
	case "edit-value":
		return a.editValue(ctx, args)
	case "pay":
		return a.pay(ctx, args)
	case "credits":
		return a.credits(ctx)
	case "credit":
		return a.creditDetail(ctx, args)
	case "confirm":
		return a.confirm(ctx, args)
	case "debts":
		return a.debts(ctx)
	case "debt":
		return a.debtDetail(ctx, args)
	case "invites":
		return a.listInvites(ctx)
	case "respond":
		return a.respond(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: racha login <email-or-phone> <password>")
	}
	u, err := a.auth.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (id %d)\n", u.Name, u.ID)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: racha register <name> <email> <phone> <password>")
	}
	u, err := a.auth.Register(ctx, &auth.RegisterRequest{
		Name:        args[0],
		Email:       args[1],
		PhoneNumber: args[2],
		Password:    args[3],
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s (id %d)\n", u.Name, u.ID)
	return nil
}

func (a *app) listBills(ctx context.Context, args []string) error {
	now := time.Now()
	month, year := int(now.Month()), now.Year()
	if len(args) == 2 {
		var err error
		if month, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid month %q", args[0])
		}
		if year, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid year %q", args[1])
		}
	}

	instances, err := a.bills.ListMonthly(ctx, month, year)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d\n", format.MonthName(month), year)
	for _, inst := range instances {
		paid := " "
		if inst.IsPaid {
			paid = "x"
		}
		fmt.Printf("[%s] #%d %s - %s (sua parte: %s, %s%%)",
			paid, inst.BillID, inst.Description,
			format.Currency(inst.Value), format.Currency(inst.UserValue),
			inst.SharePercentage.StringFixed(2))
		if inst.InstallmentInfo != nil {
			fmt.Printf(" parcela %s", *inst.InstallmentInfo)
		}
		fmt.Printf(" vence %s\n", format.Date(inst.DueDate))
	}
	return nil
}

func (a *app) createBill(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-bill", flag.ContinueOnError)
	description := fs.String("description", "", "bill description")
	billType := fs.String("type", string(bill.TypeRecurring), "recurring or installment")
	dueDay := fs.Int("due-day", 1, "day of month the bill is due")
	monthValue := fs.String("month-value", "", "current month value (recurring)")
	totalValue := fs.String("total-value", "", "total value (installment)")
	installments := fs.Int("installments", 0, "installment count (installment)")
	startMonth := fs.Int("start-month", int(time.Now().Month()), "first month (installment)")
	startYear := fs.Int("start-year", time.Now().Year(), "first year (installment)")
	shares := fs.String("shares", "", "participants as id:percent,id:percent (defaults to you at 100%)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	me, ok := a.session.User()
	if !ok {
		return fmt.Errorf("not logged in")
	}

	users, err := a.users.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	form := bill.NewForm(users, me.ID, now)
	form.Description = *description
	form.SetType(bill.Type(*billType))
	form.DueDay = *dueDay
	form.StartMonth = *startMonth
	form.StartYear = *startYear
	form.InstallmentCount = *installments
	if *totalValue != "" {
		if form.TotalValue, err = decimal.NewFromString(*totalValue); err != nil {
			return fmt.Errorf("invalid total value %q", *totalValue)
		}
	}
	if *monthValue != "" {
		if form.CurrentMonthValue, err = decimal.NewFromString(*monthValue); err != nil {
			return fmt.Errorf("invalid month value %q", *monthValue)
		}
	}
	if *shares != "" {
		if err := applyShares(form.Allocator, *shares); err != nil {
			return err
		}
	}

	created, err := a.bills.Create(ctx, form, now)
	if err != nil {
		return err
	}
	fmt.Printf("created bill #%d %s\n", created.ID, created.Description)
	return nil
}

// applyShares replaces the allocator's seeded participant with the
// id:percent pairs given on the command line
func applyShares(alloc *bill.Allocator, spec string) error {
	first := true
	for _, pair := range strings.Split(spec, ",") {
		var userID int64
		var share float64
		if _, err := fmt.Sscanf(pair, "%d:%f", &userID, &share); err != nil {
			return fmt.Errorf("invalid share %q, want id:percent", pair)
		}

		index := len(alloc.Participants())
		if first {
			index = 0
			first = false
		} else if err := alloc.Add(); err != nil {
			return err
		}
		if err := alloc.SetUser(index, userID); err != nil {
			return err
		}
		if err := alloc.SetShare(index, share); err != nil {
			return err
		}
	}
	return alloc.ValidateShares()
}

func (a *app) deleteBill(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: racha delete-bill <bill-id>")
	}
	billID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bill id %q", args[0])
	}
	if err := a.bills.Delete(ctx, billID); err != nil {
		return err
	}
	fmt.Printf("deleted bill #%d\n", billID)
	return nil
}

func (a *app) editValue(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: racha edit-value <bill-id> <month> <year> <value>")
	}
	billID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bill id %q", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid month %q", args[1])
	}
	year, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[2])
	}
	value, err := decimal.NewFromString(args[3])
	if err != nil {
		return fmt.Errorf("invalid value %q", args[3])
	}
	return a.bills.EditValue(ctx, billID, month, year, value)
}

func (a *app) pay(ctx context.Context, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return fmt.Errorf("usage: racha pay <bill-id> <month> <year> <value> [receipt-file]")
	}
	billID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bill id %q", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid month %q", args[1])
	}
	year, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[2])
	}
	value, err := decimal.NewFromString(args[3])
	if err != nil {
		return fmt.Errorf("invalid value %q", args[3])
	}

	var receipt *payment.Receipt
	if len(args) == 5 {
		data, err := os.ReadFile(args[4])
		if err != nil {
			return fmt.Errorf("failed to read receipt: %w", err)
		}
		receipt = &payment.Receipt{FileName: args[4], Data: data}
	}

	resolution := a.resolver.Resolve(ctx, billID, month, year)
	err = a.payments.Submit(ctx, &payment.Request{
		Target:  resolution.Target,
		Value:   value,
		PayedAt: time.Now(),
		Receipt: receipt,
	})
	if err != nil {
		return err
	}
	fmt.Printf("payment of %s registered for bill #%d (%d/%d)\n",
		format.Currency(value), billID, month, year)
	return nil
}

func (a *app) credits(ctx context.Context) error {
	edges, err := a.balances.Credits(ctx)
	if err != nil {
		return err
	}
	for _, e := range edges {
		fmt.Printf("#%d %s te deve %s\n", e.UserID, e.UserName, format.Currency(e.TotalValue))
	}
	return nil
}

func (a *app) creditDetail(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: racha credit <debtor-id>")
	}
	debtorID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid debtor id %q", args[0])
	}
	detail, err := a.balances.CreditDetail(ctx, debtorID)
	if err != nil {
		return err
	}
	fmt.Println(balance.ChargeMessage(detail))
	return nil
}

func (a *app) confirm(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: racha confirm <debtor-id> [value]")
	}
	debtorID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid debtor id %q", args[0])
	}

	var amount *decimal.Decimal
	if len(args) == 2 {
		value, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q", args[1])
		}
		amount = &value
	}

	resp, detail, err := a.balances.Confirm(ctx, debtorID, amount)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	if detail != nil {
		fmt.Printf("%s agora deve %s\n", detail.UserName, format.Currency(detail.TotalValue))
	}
	return nil
}

func (a *app) debts(ctx context.Context) error {
	edges, err := a.balances.Debts(ctx)
	if err != nil {
		return err
	}
	for _, e := range edges {
		fmt.Printf("#%d você deve %s a %s\n", e.UserID, format.Currency(e.TotalValue), e.UserName)
	}
	return nil
}

func (a *app) debtDetail(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: racha debt <creditor-id>")
	}
	creditorID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid creditor id %q", args[0])
	}
	detail, err := a.balances.DebtDetail(ctx, creditorID)
	if err != nil {
		return err
	}
	for _, item := range detail.History {
		fmt.Printf("• %s - %s (%s)\n", item.Description, format.Currency(item.Value), format.Date(item.CreatedAt))
	}
	fmt.Printf("total: %s\n", format.Currency(detail.TotalValue))
	return nil
}

func (a *app) listInvites(ctx context.Context) error {
	if err := a.invites.Refresh(ctx); err != nil {
		return err
	}
	for _, inv := range a.invites.Pending() {
		fmt.Printf("#%d %s - convidado por %s, sua parte %s%%, vence dia %d (%s)\n",
			inv.BillID, inv.Description, inv.OwnerName,
			inv.SharePercentage.StringFixed(2), inv.DueDay, format.Date(inv.CreatedAt))
	}
	return nil
}

func (a *app) respond(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: racha respond <bill-id> accepted|rejected")
	}
	billID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bill id %q", args[0])
	}

	if err := a.invites.Refresh(ctx); err != nil {
		return err
	}
	return a.invites.Respond(ctx, billID, invite.Status(args[1]))
}
