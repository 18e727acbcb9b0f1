package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reportTopN int

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Descriptive reports over the order records",
}

var reportsTopClientsCmd = &cobra.Command{
	Use:   "top-clients",
	Short: "Top clients by order count",
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportTopN < 1 {
			return fmt.Errorf("--top must be a positive integer")
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		orders, err := services.OrderRepo.List(cmd.Context())
		if err != nil {
			return err
		}

		rows := services.ReportService.TopClients(orders, reportTopN)
		if len(rows) == 0 {
			fmt.Println("No orders found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CLIENT\tID\tORDERS")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%d\t%d\n", row.ClientName, row.ClientID, row.Orders)
		}
		w.Flush()

		return nil
	},
}

var reportsDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Order count per calendar date",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		orders, err := services.OrderRepo.List(cmd.Context())
		if err != nil {
			return err
		}

		points := services.ReportService.OrdersByDate(orders)
		if len(points) == 0 {
			fmt.Println("No orders found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tORDERS")
		for _, p := range points {
			fmt.Fprintf(w, "%s\t%d\n", p.Date, p.Orders)
		}
		w.Flush()

		return nil
	},
}

var reportsGraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Client similarity graph from shared purchased products",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		clients, err := services.ClientRepo.List(cmd.Context())
		if err != nil {
			return err
		}
		orders, err := services.OrderRepo.List(cmd.Context())
		if err != nil {
			return err
		}

		graph := services.ReportService.BuildClientGraph(clients, orders)

		names := make(map[int64]string, len(graph.Nodes))
		for _, n := range graph.Nodes {
			names[n.ID] = n.Name
		}

		fmt.Printf("%d clients, %d connections\n", graph.Stats.TotalNodes, graph.Stats.TotalEdges)
		if len(graph.Edges) == 0 {
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CLIENT\tCLIENT\tSHARED PRODUCTS")
		for _, e := range graph.Edges {
			fmt.Fprintf(w, "%s (%d)\t%s (%d)\t%d\n", names[e.Source], e.Source, names[e.Target], e.Target, e.Weight)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(reportsTopClientsCmd)
	reportsCmd.AddCommand(reportsDailyCmd)
	reportsCmd.AddCommand(reportsGraphCmd)

	reportsTopClientsCmd.Flags().IntVar(&reportTopN, "top", 5, "number of clients to show")
}
