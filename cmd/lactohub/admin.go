package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Aravindhan20041506/Lacto-hub/internal/auth"
	"github.com/Aravindhan20041506/Lacto-hub/internal/format"
	"github.com/Aravindhan20041506/Lacto-hub/internal/models"
	"github.com/Aravindhan20041506/Lacto-hub/internal/orders"
)

func (a *app) cmdAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		adminUsage()
		return nil
	}
	switch args[0] {
	case "login":
		return a.adminLogin(ctx, args[1:])
	case "logout":
		if err := a.sessions.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	case "hash-password":
		return adminHashPassword(args[1:])
	case "help":
		adminUsage()
		return nil
	}

	// Everything below is dashboard territory.
	ok, err := a.sessions.Check(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("not logged in, run `lactohub admin login` first")
	}

	switch args[0] {
	case "orders":
		return a.adminOrders(ctx, args[1:])
	case "show":
		return a.adminShow(ctx, args[1:])
	case "deliver":
		return a.adminDeliver(ctx, args[1:])
	case "delete":
		return a.adminDelete(ctx, args[1:])
	case "stats":
		return a.adminStats(ctx)
	case "export":
		return a.adminExport(ctx, args[1:])
	default:
		adminUsage()
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

func adminUsage() {
	fmt.Print(`Admin dashboard:
  lactohub admin login -id <id> -password <password>
  lactohub admin logout
  lactohub admin orders [-status pending|delivered]
  lactohub admin show <orderID>
  lactohub admin deliver <orderID>
  lactohub admin delete <orderID>
  lactohub admin stats
  lactohub admin export [file]
  lactohub admin hash-password <password>
`)
}

func (a *app) adminLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin login", flag.ContinueOnError)
	id := fs.String("id", "", "admin id")
	password := fs.String("password", "", "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.sessions.Login(ctx, a.verifier, *id, *password); err != nil {
		return errors.New("invalid credentials, check your Admin ID and Password")
	}
	fmt.Println("✅ Login successful! Welcome to the admin panel.")
	return nil
}

func adminHashPassword(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: lactohub admin hash-password <password>")
	}
	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func (a *app) adminOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin orders", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status: pending or delivered")
	if err := fs.Parse(args); err != nil {
		return err
	}

	all, err := a.orders.List(ctx)
	if err != nil {
		return err
	}
	if *status != "" {
		all = orders.FilterByStatus(all, *status)
	}
	all = orders.NewestFirst(all)

	if len(all) == 0 {
		fmt.Println("No orders yet")
		return nil
	}
	for _, o := range all {
		fmt.Printf("%-20s %-16s %-11s %9s  %-16s %-9s %s\n",
			o.OrderID,
			o.CustomerInfo.Name,
			o.CustomerInfo.Phone,
			format.Currency(o.Total),
			paymentLabel(o.PaymentMethod),
			o.Status,
			format.Date(o.OrderDate))
	}
	return nil
}

func (a *app) adminShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: lactohub admin show <orderID>")
	}
	o, err := a.orders.Find(ctx, args[0])
	if errors.Is(err, orders.ErrOrderNotFound) {
		fmt.Printf("Order %s not found, it may have been deleted\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Order %s (%s)\n", o.OrderID, o.Status)
	fmt.Printf("  Customer: %s, %s", o.CustomerInfo.Name, o.CustomerInfo.Phone)
	if o.CustomerInfo.Email != "" {
		fmt.Printf(", %s", o.CustomerInfo.Email)
	}
	fmt.Println()
	fmt.Printf("  Address:  %s (near %s)\n", o.DeliveryInfo.Address, o.DeliveryInfo.Landmark)
	fmt.Printf("  Delivery: %s\n", deliveryLabel(o.DeliveryInfo.DeliveryTime))
	fmt.Printf("  Payment:  %s\n", paymentLabel(o.PaymentMethod))
	fmt.Println("  Items:")
	for _, it := range o.Items {
		fmt.Printf("    • %s × %d = %s\n", it.Name, it.Quantity, format.Currency(it.Price*float64(it.Quantity)))
	}
	fmt.Printf("  Total:    %s\n", format.Currency(o.Total))
	fmt.Printf("  Placed:   %s\n", format.Date(o.OrderDate))
	if o.DeliveredDate != nil {
		fmt.Printf("  Delivered: %s\n", format.Date(*o.DeliveredDate))
	}
	if o.SpecialInstructions != "" {
		fmt.Printf("  Instructions: %s\n", o.SpecialInstructions)
	}
	return nil
}

func (a *app) adminDeliver(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: lactohub admin deliver <orderID>")
	}
	o, err := a.orders.MarkDelivered(ctx, args[0])
	if errors.Is(err, orders.ErrOrderNotFound) {
		fmt.Printf("Order %s not found, it may have been deleted\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Order %s marked as delivered\n", o.OrderID)
	return nil
}

func (a *app) adminDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: lactohub admin delete <orderID>")
	}
	err := a.orders.Delete(ctx, args[0])
	if errors.Is(err, orders.ErrOrderNotFound) {
		fmt.Printf("Order %s not found, it may have been deleted\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Order %s deleted\n", args[0])
	return nil
}

func (a *app) adminStats(ctx context.Context) error {
	all, err := a.orders.List(ctx)
	if err != nil {
		return err
	}
	st := orders.ComputeStats(all, time.Now(), orders.RevenuePolicy(a.cfg.RevenuePolicy))
	fmt.Printf("Total orders:   %d\n", st.TotalOrders)
	fmt.Printf("Pending orders: %d\n", st.PendingOrders)
	fmt.Printf("Today's orders: %d\n", st.OrdersOnDate)
	fmt.Printf("Total revenue:  %s\n", format.Currency(st.Revenue))
	return nil
}

func (a *app) adminExport(ctx context.Context, args []string) error {
	path := fmt.Sprintf("lactohub_orders_%s.csv", time.Now().Format("2006-01-02"))
	if len(args) > 0 {
		path = args[0]
	}

	all, err := a.orders.List(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No orders to export")
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if err := orders.ExportCSV(file, orders.NewestFirst(all)); err != nil {
		return err
	}
	fmt.Printf("Orders exported to %s\n", path)
	return nil
}

func deliveryLabel(slot string) string {
	if slot == models.DeliveryMorning {
		return "Morning (7-9 AM)"
	}
	return "Evening (7-9 PM)"
}

func paymentLabel(method string) string {
	if method == models.PaymentCOD {
		return "Cash on Delivery"
	}
	return "Online Payment"
}
