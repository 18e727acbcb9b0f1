package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

var clientCSVHeader = []string{"client_id", "name", "email", "phone"}

// productRecord is the JSON interchange shape for products.
type productRecord struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// ImportResult reports what an import did. Rows rejected by the store
// (duplicate IDs) are skipped, not fatal.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// TransferService handles bulk interchange: clients as CSV, products as JSON.
type TransferService struct {
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
}

func NewTransferService(clientRepo repository.ClientRepository, productRepo repository.ProductRepository) *TransferService {
	return &TransferService{
		clientRepo:  clientRepo,
		productRepo: productRepo,
	}
}

func (s *TransferService) ExportClientsCSV(ctx context.Context, path string) error {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(clientCSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, c := range clients {
		row := []string{strconv.FormatInt(c.ID, 10), c.Name, c.Email, c.Phone}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return f.Close()
}

func (s *TransferService) ImportClientsCSV(ctx context.Context, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return &ImportResult{}, nil
	}

	result := &ImportResult{}
	for _, row := range records[1:] { // skip header
		if len(row) < 4 {
			result.Skipped++
			continue
		}
		id, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			result.Skipped++
			continue
		}
		client := domain.NewClient(id, row[1], row[2], row[3])
		if err := s.clientRepo.Create(ctx, client); err != nil {
			if errors.Is(err, repository.ErrDuplicateID) {
				result.Skipped++
				continue
			}
			return result, err
		}
		result.Imported++
	}
	return result, nil
}

func (s *TransferService) ExportProductsJSON(ctx context.Context, path string) error {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return err
	}

	records := make([]productRecord, len(products))
	for i, p := range products {
		records[i] = productRecord{ProductID: p.ID, Name: p.Name, Price: p.Price}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func (s *TransferService) ImportProductsJSON(ctx context.Context, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}

	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse products json: %w", err)
	}

	result := &ImportResult{}
	for _, rec := range records {
		product := domain.NewProduct(rec.ProductID, rec.Name, rec.Price)
		if err := s.productRepo.Create(ctx, product); err != nil {
			if errors.Is(err, repository.ErrDuplicateID) {
				result.Skipped++
				continue
			}
			return result, err
		}
		result.Imported++
	}
	return result, nil
}
