package cli

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/qanyare/restaurant-service/internal/cart"
	"github.com/qanyare/restaurant-service/internal/models"
)

func (a *app) menuCommand() *cobra.Command {
	var categoryID int64

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *int64
			if cmd.Flags().Changed("category") {
				filter = &categoryID
			}

			items, err := a.api.ListMenuItems(cmd.Context(), filter)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tENGLISH\tPRICE\tAVAILABLE")
			for _, it := range items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\n", it.ID, it.Name, it.NameEn, money(it.Price), it.IsAvailable)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Int64Var(&categoryID, "category", 0, "only items of this category id")
	return cmd
}

func (a *app) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the menu categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.api.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tENGLISH\tSOMALI")
			for _, c := range categories {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.NameEn, c.NameSo)
			}
			return tw.Flush()
		},
	}
}

func (a *app) cartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <item-id>",
			Short: "Add one of a menu item",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				item, err := a.api.GetMenuItem(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !item.IsAvailable {
					return fmt.Errorf("%s is not available right now", item.Name)
				}
				return a.cart.Add(cart.FromMenuItem(*item))
			},
		},
		&cobra.Command{
			Use:   "remove <item-id>",
			Short: "Remove a line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.cart.Remove(id)
			},
		},
		&cobra.Command{
			Use:   "set <item-id> <quantity>",
			Short: "Change the quantity of a line; 0 removes it",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				quantity, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid quantity %q", args[1])
				}
				return a.cart.SetQuantity(id, quantity)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				items := a.cart.Items()
				if len(items) == 0 {
					fmt.Fprintln(a.out, "Cart is empty")
					return nil
				}

				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tQTY\tSUBTOTAL")
				for _, it := range items {
					fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", it.ID, it.Name, it.Quantity, money(it.Price*int64(it.Quantity)))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%d items, total %s\n", a.cart.TotalItems(), money(a.cart.TotalPrice()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cart.Clear()
			},
		},
	)
	return cmd
}

func (a *app) checkoutCommand() *cobra.Command {
	var name, phone, email, notes string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place the cart as an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				if user := a.session.User(); user != nil {
					name = user.Name
				}
			}

			order, err := a.cart.Checkout(cmd.Context(), a.api, cart.CustomerDetails{
				CustomerName:  name,
				CustomerPhone: optional(phone),
				CustomerEmail: optional(email),
				Notes:         optional(notes),
			})
			if errors.Is(err, cart.ErrEmpty) {
				return errors.New("nothing to check out, add items with 'qanyare cart add'")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Order #%d: %s, %s\n", order.ID, order.Status, money(order.Total))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name (defaults to the signed-in user)")
	cmd.Flags().StringVar(&phone, "phone", "", "customer phone")
	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&notes, "notes", "", "notes for the kitchen")
	return cmd
}

func (a *app) loginCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return errors.New("--password is required")
			}
			_, err := a.session.Login(cmd.Context(), args[0], password)
			return err
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func (a *app) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Logout()
		},
	}
}

func (a *app) whoamiCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.session.User()
			if user == nil {
				fmt.Fprintln(a.out, "Not signed in")
				return nil
			}
			isAdmin := a.session.IsAdmin()
			if refresh {
				current, err := a.api.Me(cmd.Context())
				if err != nil {
					return fmt.Errorf("refresh account: %w", err)
				}
				user, isAdmin = current, current.IsAdmin
			}

			role := "customer"
			if isAdmin {
				role = "admin"
			}
			fmt.Fprintf(a.out, "%s (%s), %s\n", user.Username, user.Name, role)
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ask the server for the current account")
	return cmd
}

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.api.Stats(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Orders\t%d\n", stats.TotalOrders)
			fmt.Fprintf(tw, "Reservations\t%d\n", stats.TotalReservations)
			fmt.Fprintf(tw, "Revenue\t%s\n", money(stats.TotalRevenue))
			fmt.Fprintf(tw, "Customers\t%d\n", stats.TotalCustomers)
			fmt.Fprintf(tw, "Reviews\t%d\n", stats.TotalReviews)
			fmt.Fprintf(tw, "Average rating\t%.1f\n", stats.AvgRating)
			fmt.Fprintf(tw, "Staff\t%d\n", stats.TotalStaff)
			return tw.Flush()
		},
	}
}

func (a *app) ordersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := a.api.ListOrders(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCUSTOMER\tTOTAL\tSTATUS\tPLACED")
			for _, o := range orders {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", o.ID, o.CustomerName, money(o.Total), o.Status, o.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
}

func (a *app) myOrdersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "my-orders",
		Short: "List your orders and reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.session.User() == nil {
				return errors.New("sign in first with: qanyare login <username>")
			}

			orders, err := a.api.ListMyOrders(cmd.Context())
			if err != nil {
				return err
			}
			reservations, err := a.api.ListMyReservations(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ORDER\tTOTAL\tSTATUS\tPLACED")
			for _, o := range orders {
				fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\n", o.ID, money(o.Total), o.Status, o.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "RESERVATION\tDATE\tGUESTS\tSTATUS")
			for _, r := range reservations {
				fmt.Fprintf(tw, "#%d\t%s %s\t%d\t%s\n", r.ID, r.Date, r.Time, r.Guests, r.Status)
			}
			return tw.Flush()
		},
	}
}

func (a *app) orderStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order-status <order-id> <status>",
		Short: "Move an order to pending, preparing, ready, completed or cancelled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := models.OrderStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}

			order, err := a.api.UpdateOrderStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Order #%d is now %s\n", order.ID, order.Status)
			return nil
		},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
