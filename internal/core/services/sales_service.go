package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/bukupintar/bukupintar_app/internal/utils/aggregate"
)

// salesService implements the SalesSvcFacade interface
type salesService struct {
	BaseService
	transactionRepo   portsrepo.TransactionRepositoryFacade
	paymentConfigRepo portsrepo.PaymentConfigReader
	linker            portssvc.PaymentLinker
}

// NewSalesService creates a new sales service. The linker stands in for
// the gateway integration that produces payment links.
func NewSalesService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	paymentConfigRepo portsrepo.PaymentConfigReader,
	linker portssvc.PaymentLinker,
) portssvc.SalesSvcFacade {
	return &salesService{
		transactionRepo:   transactionRepo,
		paymentConfigRepo: paymentConfigRepo,
		linker:            linker,
	}
}

// Ensure salesService implements the SalesSvcFacade interface
var _ portssvc.SalesSvcFacade = (*salesService)(nil)

func (s *salesService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *salesService) ListTransactions(ctx context.Context, txnType domain.TransactionType) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if txnType == "" {
		return txns, nil
	}
	return aggregate.FilterByType(txns, txnType), nil
}

func (s *salesService) TotalSales(ctx context.Context) (dto.AmountResponse, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for sales total")
		return dto.AmountResponse{}, err
	}
	return dto.AmountResponse{Total: aggregate.TotalSales(txns)}, nil
}

// AssignPaymentLink generates a fresh link through the active gateway
// and patches it onto the transaction. The transaction's status is
// never touched; re-invoking replaces the previous link.
func (s *salesService) AssignPaymentLink(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction for payment link", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	cfg, err := s.paymentConfigRepo.GetPaymentConfig(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payment config")
		return nil, err
	}

	link, err := s.linker.GenerateLink(ctx, *txn, cfg.ActiveGateway, cfg.IsSandbox)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate payment link",
			slog.String("transaction_id", transactionID),
			slog.String("gateway", string(cfg.ActiveGateway)))
		return nil, err
	}

	updated, err := s.transactionRepo.UpdatePaymentLink(ctx, transactionID, link, cfg.ActiveGateway)
	if err != nil {
		s.LogError(ctx, err, "Failed to store payment link", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment link assigned",
		slog.String("transaction_id", transactionID),
		slog.String("gateway", string(cfg.ActiveGateway)))
	return updated, nil
}

func (s *salesService) UpdateStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	if !status.IsValid() {
		err := fmt.Errorf("unknown transaction status %q: %w", status, apperrors.ErrValidation)
		s.LogError(ctx, err, "Rejected status update", slog.String("transaction_id", transactionID))
		return nil, err
	}

	updated, err := s.transactionRepo.UpdateStatus(ctx, transactionID, status)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transaction status", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction status updated",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(status)))
	return updated, nil
}

// ExportSalesCSV renders the sales invoices as CSV with a fixed header
// row, every field quoted, named with the current date.
func (s *salesService) ExportSalesCSV(ctx context.Context) (*dto.CSVExport, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for CSV export")
		return nil, err
	}
	sales := aggregate.FilterByType(txns, domain.Sale)

	var b strings.Builder
	writeCSVRow(&b, []string{"ID Faktur", "Pelanggan", "Email", "Tanggal", "Total", "Status", "Gateway"})
	for _, txn := range sales {
		writeCSVRow(&b, []string{
			txn.TransactionID,
			txn.CustomerVendor,
			txn.CustomerEmail,
			txn.Date,
			txn.Total.String(),
			string(txn.Status),
			string(txn.PaymentGateway),
		})
	}

	return &dto.CSVExport{
		Filename: fmt.Sprintf("penjualan-%s.csv", time.Now().Format("2006-01-02")),
		Content:  []byte(b.String()),
	}, nil
}

// writeCSVRow writes one record with every field quoted. encoding/csv
// only quotes fields that need it, so the row is assembled by hand.
func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
