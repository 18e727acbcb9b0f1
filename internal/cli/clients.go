package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
}

var clientsAddCmd = &cobra.Command{
	Use:   "add <id> <name> <email> <phone>",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid client id: %s", args[0])
		}

		client := domain.NewClient(id, args[1], args[2], args[3])
		if !domain.ValidEmail(client.Email) {
			return fmt.Errorf("invalid email: %s", client.Email)
		}
		if !domain.ValidPhone(client.Phone) {
			return fmt.Errorf("invalid phone: %s (expected optional + and 10-15 digits)", client.Phone)
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.ClientRepo.Create(cmd.Context(), client); err != nil {
			return fmt.Errorf("failed to add client: %w", err)
		}

		fmt.Printf("Client %d added\n", client.ID)
		return nil
	},
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		clients, err := services.ClientRepo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		if len(clients) == 0 {
			fmt.Println("No clients found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
		for _, client := range clients {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", client.ID, client.Name, client.Email, client.Phone)
		}
		w.Flush()

		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client and all their orders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid client id: %s", args[0])
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		// Deleting a client cascades to their orders
		fmt.Printf("Delete client %d and all their orders? (yes/no): ", id)
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" {
			fmt.Println("Cancelled")
			return nil
		}

		if err := services.ClientRepo.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}

		fmt.Printf("Client %d deleted\n", id)
		return nil
	},
}

var clientsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export clients to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.TransferService.ExportClientsCSV(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to export clients: %w", err)
		}

		fmt.Printf("Clients exported to %s\n", args[0])
		return nil
	},
}

var clientsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import clients from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		result, err := services.TransferService.ImportClientsCSV(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to import clients: %w", err)
		}

		fmt.Printf("Imported %d clients, skipped %d\n", result.Imported, result.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsDeleteCmd)
	clientsCmd.AddCommand(clientsExportCmd)
	clientsCmd.AddCommand(clientsImportCmd)
}
