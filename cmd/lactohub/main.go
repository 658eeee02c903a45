package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Aravindhan20041506/Lacto-hub/internal/auth"
	"github.com/Aravindhan20041506/Lacto-hub/internal/cart"
	"github.com/Aravindhan20041506/Lacto-hub/internal/catalog"
	"github.com/Aravindhan20041506/Lacto-hub/internal/checkout"
	"github.com/Aravindhan20041506/Lacto-hub/internal/config"
	"github.com/Aravindhan20041506/Lacto-hub/internal/format"
	"github.com/Aravindhan20041506/Lacto-hub/internal/orders"
	"github.com/Aravindhan20041506/Lacto-hub/internal/storage"
)

type app struct {
	cfg      config.Config
	catalog  *catalog.Service
	cart     *cart.Service
	orders   *orders.Service
	checkout *checkout.Service
	sessions *auth.Sessions
	verifier auth.Verifier
}

func main() {
	log.SetFlags(0)
	config.Load()
	cfg := config.FromEnv()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	a := &app{cfg: cfg}
	a.catalog = catalog.NewService(store)
	a.cart = cart.NewService(store)
	a.orders = orders.NewService(store, orders.WithIDGenerator(idGenerator(cfg)))
	a.checkout = checkout.NewService(a.cart, a.orders)
	a.sessions = auth.NewSessions(store, cfg.SessionTTL)
	a.verifier = newVerifier(cfg)

	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case "redis":
		s := storage.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, 0)
		if err := s.Ping(context.Background()); err != nil {
			return nil, fmt.Errorf("redis at %s: %w", cfg.RedisAddr, err)
		}
		return s, nil
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func idGenerator(cfg config.Config) orders.IDGenerator {
	if cfg.IDScheme == "uuid" {
		return orders.UUIDID
	}
	return orders.LactoID
}

func newVerifier(cfg config.Config) auth.Verifier {
	switch {
	case cfg.AdminID != "" && cfg.AdminPasswordHash != "":
		return auth.Hashed{ID: cfg.AdminID, PasswordHash: cfg.AdminPasswordHash}
	case cfg.AdminID != "" && cfg.AdminPassword != "":
		log.Println("⚠️  LACTOHUB_ADMIN_PASSWORD is plaintext, prefer LACTOHUB_ADMIN_PASSWORD_HASH")
		return auth.Static{ID: cfg.AdminID, Password: cfg.AdminPassword}
	default:
		return auth.DenyAll{}
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}
	switch args[0] {
	case "products":
		return a.cmdProducts(ctx)
	case "cart":
		return a.cmdCart(ctx, args[1:])
	case "checkout":
		return a.cmdCheckout(ctx, args[1:])
	case "admin":
		return a.cmdAdmin(ctx, args[1:])
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Print(`LACTO HUB — fresh dairy, delivered

Usage:
  lactohub products                        list the catalog
  lactohub cart list                       show the cart
  lactohub cart add <productID>            add one unit of a catalog product
  lactohub cart add <id> <name> <price>    add a custom item
  lactohub cart set <id> <quantity>        change a line's quantity
  lactohub cart remove <id>                remove a line
  lactohub cart clear                      empty the cart
  lactohub cart total                      show the cart value
  lactohub checkout [flags]                place the order (see checkout -h)
  lactohub admin <subcommand>              dashboard (see admin help)
`)
}

func (a *app) cmdProducts(ctx context.Context) error {
	products, err := a.catalog.Products(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Our products:")
	for _, p := range products {
		fmt.Printf("  %-10s %-12s %8s  %s\n", p.ID, p.Name, format.Currency(p.Price), p.Unit)
	}
	return nil
}

func (a *app) cmdCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.printCart(ctx)
	}
	switch args[0] {
	case "list":
		return a.printCart(ctx)

	case "add":
		switch len(args) {
		case 2:
			p, err := a.catalog.Find(ctx, args[1])
			if errors.Is(err, catalog.ErrProductNotFound) {
				return fmt.Errorf("no product %q, run `lactohub products` to see the catalog", args[1])
			}
			if err != nil {
				return err
			}
			if err := a.cart.Add(ctx, p.ID, p.Name, p.Price); err != nil {
				return err
			}
			fmt.Printf("%s added to cart!\n", p.Name)
			return a.printCartCount(ctx)
		case 4:
			price, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("price %q is not a number", args[3])
			}
			if err := a.cart.Add(ctx, args[1], args[2], price); err != nil {
				return err
			}
			fmt.Printf("%s added to cart!\n", args[2])
			return a.printCartCount(ctx)
		default:
			return errors.New("usage: lactohub cart add <productID> | <id> <name> <price>")
		}

	case "set":
		if len(args) != 3 {
			return errors.New("usage: lactohub cart set <id> <quantity>")
		}
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("quantity %q is not a number", args[2])
		}
		if err := a.cart.SetQuantity(ctx, args[1], qty); err != nil {
			return err
		}
		return a.printCart(ctx)

	case "remove":
		if len(args) != 2 {
			return errors.New("usage: lactohub cart remove <id>")
		}
		if err := a.cart.Remove(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("Item removed from cart")
		return a.printCart(ctx)

	case "clear":
		if err := a.cart.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("Cart cleared")
		return nil

	case "total":
		total, err := a.cart.Total(ctx)
		if err != nil {
			return err
		}
		fmt.Println(format.Currency(total))
		return nil

	default:
		return fmt.Errorf("unknown cart subcommand %q", args[0])
	}
}

func (a *app) printCart(ctx context.Context) error {
	items, err := a.cart.Items(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}
	for _, it := range items {
		fmt.Printf("  %-10s %-12s %8s × %d = %s\n",
			it.ID, it.Name, format.Currency(it.Price), it.Quantity,
			format.Currency(it.Price*float64(it.Quantity)))
	}
	fmt.Printf("Total: %s\n", format.Currency(cart.Total(items)))
	return nil
}

func (a *app) printCartCount(ctx context.Context) error {
	count, err := a.cart.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Cart: %d item(s)\n", count)
	return nil
}

func (a *app) cmdCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	var f checkout.Form
	fs.StringVar(&f.Name, "name", "", "customer name")
	fs.StringVar(&f.Phone, "phone", "", "10-digit mobile number")
	fs.StringVar(&f.Email, "email", "", "email (optional)")
	fs.StringVar(&f.Address, "address", "", "delivery address")
	fs.StringVar(&f.Landmark, "landmark", "", "nearby landmark")
	fs.StringVar(&f.DeliveryTime, "time", "", "delivery slot: morning or evening")
	fs.StringVar(&f.PaymentMethod, "payment", "", "payment method: cod or online")
	fs.StringVar(&f.SpecialInstructions, "instructions", "", "special instructions (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	order, err := a.checkout.PlaceOrder(ctx, f)
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		for _, msg := range verr.Messages {
			fmt.Println("  •", msg)
		}
		return errors.New("order not placed")
	}
	if errors.Is(err, checkout.ErrEmptyCart) {
		return errors.New("your cart is empty, add items before checkout")
	}
	if err != nil {
		return err
	}

	fmt.Println("🎉 Order placed successfully!")
	fmt.Printf("Order ID: %s\n", order.OrderID)
	fmt.Printf("Total:    %s\n", format.Currency(order.Total))
	fmt.Printf("Delivery: %s\n", deliveryLabel(order.DeliveryInfo.DeliveryTime))
	return nil
}
