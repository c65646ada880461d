// cmd/storefront/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/trendyshop/storefront/internal/api"
	"github.com/trendyshop/storefront/internal/cart"
	"github.com/trendyshop/storefront/internal/catalog"
	"github.com/trendyshop/storefront/internal/chat"
	"github.com/trendyshop/storefront/internal/checkout"
	"github.com/trendyshop/storefront/internal/config"
	"github.com/trendyshop/storefront/internal/orders"
	"github.com/trendyshop/storefront/internal/pagination"
	"github.com/trendyshop/storefront/internal/session"
)

const usage = `Usage: storefront <command> [flags]

Commands:
  browse    list products with filters and pagination
  search    search products by keyword
  product   show a single product with its reviews
  chat      talk to the shopping assistant
  orders    list your orders (requires login)
  demo      run a full scripted session: browse, cart, checkout

Environment:
  API_BASE_URL         backend base URL (default http://localhost:8080)
  STOREFRONT_EMAIL     login email for authenticated commands
  STOREFRONT_PASSWORD  login password for authenticated commands
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	if cfg.Environment != "development" {
		logrus.SetLevel(logrus.WarnLevel)
	}

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.APITimeout()),
		api.WithRateLimit(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst),
	)

	ctx := context.Background()
	switch os.Args[1] {
	case "browse":
		err = runBrowse(ctx, cfg, client, os.Args[2:])
	case "search":
		err = runSearch(ctx, client, os.Args[2:])
	case "product":
		err = runProduct(ctx, client, os.Args[2:])
	case "chat":
		err = runChat(ctx, client)
	case "orders":
		err = runOrders(ctx, client)
	case "demo":
		err = runDemo(ctx, cfg, client)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

func runBrowse(ctx context.Context, cfg *config.Config, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	category := fs.String("category", "", "filter by exact category")
	maxPrice := fs.Float64("max-price", cfg.Catalog.MaxPrice, "price ceiling")
	sortMode := fs.String("sort", string(catalog.SortLatest), "latest | lowToHigh | highToLow")
	page := fs.Int("page", 0, "page index")
	perPage := fs.Int("per-page", cfg.Catalog.ItemsPerPage, "items per page")
	fs.Parse(args)

	view := catalog.NewView(client, cfg.CatalogCacheTTL())
	view.SetFilter(catalog.FilterState{
		Category: *category,
		MaxPrice: *maxPrice,
		Sort:     catalog.SortMode(*sortMode),
	})

	items, err := view.Filtered(ctx)
	if err != nil {
		return err
	}

	p := pagination.New(*perPage)
	if *page != 0 && !p.SetPage(*page, len(items)) {
		return fmt.Errorf("page %d is out of range (have %d pages)", *page, p.PageCount(len(items)))
	}

	printProducts(pagination.Page(items, p))
	start, end := p.Window(len(items))
	fmt.Printf("\nShowing %d-%d of %d products (page %d of %d)\n",
		start+1, end, len(items), p.Current()+1, p.PageCount(len(items)))
	return nil
}

func runSearch(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: storefront search <query>")
	}
	searcher := catalog.NewSearcher(client)
	items, err := searcher.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No products found. Try more general keywords.")
		return nil
	}
	printProducts(items)
	return nil
}

func runProduct(ctx context.Context, client *api.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: storefront product <id>")
	}
	p, err := client.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s\n  category: %s\n  price: %.2f\n  rating: %.1f (%d reviews)\n",
		p.Name, p.Category, p.Price, p.Rating, p.ReviewCount)

	page, err := client.ListReviews(ctx, "", p.ID)
	if err != nil {
		return err
	}
	for _, r := range page.Reviews {
		fmt.Printf("  [%d/5] %s: %q\n", r.Rating, r.UserName, r.Comment)
	}
	return nil
}

func runChat(ctx context.Context, client *api.Client) error {
	widget := chat.NewWidget(client)
	for _, m := range widget.Transcript() {
		fmt.Printf("%s: %s\n", m.Role, m.Text)
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("you: ")
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "exit" {
			return nil
		}
		if err := widget.Send(ctx, text); err != nil && !errors.Is(err, chat.ErrEmptyMessage) {
			logrus.WithError(err).Warn("assistant unreachable")
		}
		transcript := widget.Transcript()
		fmt.Printf("%s: %s\n", transcript[len(transcript)-1].Role, transcript[len(transcript)-1].Text)
		fmt.Print("you: ")
	}
	return scanner.Err()
}

func runOrders(ctx context.Context, client *api.Client) error {
	sess, err := login(ctx, client)
	if err != nil {
		return err
	}
	history := orders.NewHistory(client)
	list, err := history.Fetch(ctx, sess)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range list {
		fmt.Printf("#%s  %s  %.2f  %s\n", o.ID, o.Status, o.TotalAmount, o.Address)
	}
	return nil
}

// runDemo drives a full storefront session against the configured backend,
// exercising catalog, cart, checkout, and chat end to end.
func runDemo(ctx context.Context, cfg *config.Config, client *api.Client) error {
	sess, err := login(ctx, client)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n\n", sess.User.Name)

	view := catalog.NewView(client, cfg.CatalogCacheTTL())
	view.SetFilter(catalog.FilterState{MaxPrice: 50000, Sort: catalog.SortPriceAsc})
	items, err := view.Filtered(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d products under 50000, cheapest first:\n", len(items))
	p := pagination.New(cfg.Catalog.ItemsPerPage)
	printProducts(pagination.Page(items, p))

	store := cart.NewStore()
	for i := 0; i < 2 && i < len(items); i++ {
		store.Add(items[i], i+1)
	}
	totals := store.Totals()
	fmt.Printf("\nCart: subtotal %.2f, savings %.2f, total %.2f\n",
		totals.Subtotal, totals.TotalDiscount, totals.CartTotal)

	geo, err := client.ReverseGeocode(ctx, 23.8103, 90.4125)
	if err != nil {
		return err
	}
	shipping := checkout.FromGeocode(geo, 23.8103, 90.4125)

	orch := checkout.NewOrchestrator(client, store)
	confirmation, err := orch.Submit(ctx, sess, shipping, checkout.DefaultPaymentMethod)
	if err != nil {
		return err
	}
	fmt.Printf("Order placed: %d lines, %.2f to %q\n",
		confirmation.LineCount, confirmation.TotalAmount, confirmation.Address)

	widget := chat.NewWidget(client)
	if err := widget.Send(ctx, "How long does shipping take?"); err != nil {
		return err
	}
	transcript := widget.Transcript()
	fmt.Printf("\nassistant: %s\n", transcript[len(transcript)-1].Text)
	return nil
}

func login(ctx context.Context, client *api.Client) (session.Session, error) {
	email := os.Getenv("STOREFRONT_EMAIL")
	password := os.Getenv("STOREFRONT_PASSWORD")
	if email == "" || password == "" {
		return session.LoggedOut(), errors.New("set STOREFRONT_EMAIL and STOREFRONT_PASSWORD to login")
	}
	token, err := client.Login(ctx, email, password)
	if err != nil {
		return session.LoggedOut(), err
	}
	return session.FromToken(token)
}

func printProducts(items []api.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tOFF%")
	for _, p := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.0f\n",
			p.ID, p.Name, p.Category, p.Price, p.DiscountedPercentage)
	}
	w.Flush()
}
