package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

var productsAddCmd = &cobra.Command{
	Use:   "add <id> <name> <price>",
	Short: "Add a new product",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id: %s", args[0])
		}
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid price: %s", args[2])
		}
		if price < 0 {
			return fmt.Errorf("price must not be negative")
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		product := domain.NewProduct(id, args[1], price)
		if err := services.ProductRepo.Create(cmd.Context(), product); err != nil {
			return fmt.Errorf("failed to add product: %w", err)
		}

		fmt.Printf("Product %d added\n", product.ID)
		return nil
	},
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		products, err := services.ProductRepo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		if len(products) == 0 {
			fmt.Println("No products found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE")
		for _, product := range products {
			fmt.Fprintf(w, "%d\t%s\t%.2f\n", product.ID, product.Name, product.Price)
		}
		w.Flush()

		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id: %s", args[0])
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.ProductRepo.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}

		fmt.Printf("Product %d deleted\n", id)
		return nil
	},
}

var productsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export products to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.TransferService.ExportProductsJSON(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to export products: %w", err)
		}

		fmt.Printf("Products exported to %s\n", args[0])
		return nil
	},
}

var productsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import products from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		result, err := services.TransferService.ImportProductsJSON(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to import products: %w", err)
		}

		fmt.Printf("Imported %d products, skipped %d\n", result.Imported, result.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	productsCmd.AddCommand(productsExportCmd)
	productsCmd.AddCommand(productsImportCmd)
}
