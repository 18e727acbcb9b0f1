package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
	"github.com/spf13/cobra"
)

var (
	orderDate   string
	orderStatus string
	ordersSort  string
	ordersDesc  bool
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
}

var ordersAddCmd = &cobra.Command{
	Use:   "add <id> <client-id> <product-ids>",
	Short: "Add a new order",
	Long: `Add a new order. <product-ids> is a comma-separated list of product
identifiers, e.g. "1,2,3". The date flag accepts DD-MM-YYYY or YYYY-MM-DD
and defaults to now.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id: %s", args[0])
		}
		clientID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid client id: %s", args[1])
		}
		productIDs, err := domain.ParseProductIDs(args[2])
		if err != nil {
			return err
		}
		date, err := domain.ParseOrderDate(orderDate)
		if err != nil {
			return err
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		client, err := services.ClientRepo.FindByID(cmd.Context(), clientID)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("client %d does not exist", clientID)
		}
		if err != nil {
			return err
		}

		products := make([]domain.Product, 0, len(productIDs))
		for _, pid := range productIDs {
			product, err := services.ProductRepo.FindByID(cmd.Context(), pid)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("product %d does not exist", pid)
			}
			if err != nil {
				return err
			}
			products = append(products, *product)
		}

		order := domain.NewOrder(id, client, products, date, orderStatus)
		if err := services.OrderRepo.Create(cmd.Context(), order); err != nil {
			return fmt.Errorf("failed to add order: %w", err)
		}

		fmt.Printf("Order %d added (total %.2f)\n", order.ID, order.TotalPrice())
		return nil
	},
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		var orders []*domain.Order
		if ordersSort != "" {
			orders, err = services.OrderRepo.ListSorted(cmd.Context(), ordersSort, ordersDesc)
		} else {
			orders, err = services.OrderRepo.List(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}

		if len(orders) == 0 {
			fmt.Println("No orders found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCLIENT\tDATE\tSTATUS\tPRODUCTS\tTOTAL")
		for _, order := range orders {
			clientName := "-"
			if order.Client != nil {
				clientName = order.Client.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.2f\n",
				order.ID,
				clientName,
				order.Date.Format("2006-01-02 15:04:05"),
				order.Status,
				len(order.Products),
				order.TotalPrice(),
			)
		}
		w.Flush()

		return nil
	},
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id: %s", args[0])
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		order, err := services.OrderRepo.FindByID(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		fmt.Println(order)
		return nil
	},
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id: %s", args[0])
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.OrderRepo.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		fmt.Printf("Order %d deleted\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersAddCmd)
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersGetCmd)
	ordersCmd.AddCommand(ordersDeleteCmd)

	ordersAddCmd.Flags().StringVar(&orderDate, "date", "", "order date (DD-MM-YYYY or YYYY-MM-DD, default now)")
	ordersAddCmd.Flags().StringVar(&orderStatus, "status", "", `order status (default "New")`)
	ordersListCmd.Flags().StringVar(&ordersSort, "sort", "", "sort by date or total")
	ordersListCmd.Flags().BoolVar(&ordersDesc, "desc", true, "sort descending")
}
