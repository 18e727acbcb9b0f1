package cli

import (
	"fmt"

	"github.com/okulikov/orderdesk/internal/core/repository"
	"github.com/okulikov/orderdesk/internal/core/service"
	"github.com/okulikov/orderdesk/internal/infrastructure/sqlite"
	"github.com/okulikov/orderdesk/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "orderdesk",
	Short: "Orderdesk - shop order records",
	Long: `Orderdesk keeps a shop's order records in a single SQLite file.

It provides:
- Client, product and order management
- Reports: top clients, order volume by date, client similarity graph
- CSV/JSON bulk export and import
- A REST API for form frontends`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
}

// initServices initializes the store and all services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	clientRepo := sqlite.NewClientRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	orderRepo := sqlite.NewOrderRepository(db, clientRepo)

	reportService := service.NewReportService()
	transferService := service.NewTransferService(clientRepo, productRepo)

	return &Services{
		DB:              db,
		ClientRepo:      clientRepo,
		ProductRepo:     productRepo,
		OrderRepo:       orderRepo,
		ReportService:   reportService,
		TransferService: transferService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB              *sqlite.DB
	ClientRepo      repository.ClientRepository
	ProductRepo     repository.ProductRepository
	OrderRepo       repository.OrderRepository
	ReportService   *service.ReportService
	TransferService *service.TransferService
}

// Close releases the store handle
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
