package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
)

// assistantFallbackReply is returned whenever the completion call
// fails for any reason. The caller never sees the underlying error.
const assistantFallbackReply = "Maaf, asisten AI sedang mengalami kendala teknis. Mohon coba beberapa saat lagi."

const assistantSystemPromptFmt = `Anda adalah asisten cerdas untuk sistem akuntansi UMKM bernama "BukuPintar".
Gunakan data bisnis berikut untuk menjawab pertanyaan pengguna dalam Bahasa Indonesia yang ramah dan profesional.

DATA BISNIS:
%s

Instruksi:
1. Jika ditanya tentang stok, sebutkan detail gudangnya.
2. Jika ditanya tentang laporan keuangan, berikan ringkasan angka.
3. Jika data tidak ditemukan, katakan sejujurnya dan tawarkan bantuan lain.
4. Gunakan format Markdown untuk jawaban agar rapi (tabel, list, bold).`

// businessSnapshot is the serialized grounding context handed to the
// model. Gateway API keys are deliberately left out of it.
type businessSnapshot struct {
	Products      []domain.Product       `json:"products"`
	Transactions  []domain.Transaction   `json:"transactions"`
	Employees     []domain.Employee      `json:"employees"`
	Assets        []domain.FixedAsset    `json:"assets"`
	Accounts      []domain.Account       `json:"accounts"`
	PaymentConfig snapshotPaymentConfig  `json:"paymentConfig"`
}

type snapshotPaymentConfig struct {
	ActiveGateway domain.PaymentGateway `json:"activeGateway"`
	IsSandbox     bool                  `json:"isSandbox"`
}

// assistantService implements the AssistantSvcFacade interface
type assistantService struct {
	BaseService
	productRepo       portsrepo.ProductReader
	transactionRepo   portsrepo.TransactionReader
	employeeRepo      portsrepo.EmployeeReader
	assetRepo         portsrepo.AssetReader
	accountRepo       portsrepo.AccountReader
	paymentConfigRepo portsrepo.PaymentConfigReader
	completer         portssvc.AssistantCompleter
}

// NewAssistantService creates a new assistant service over the full
// business snapshot and the external completion client.
func NewAssistantService(
	repos *portsrepo.RepositoryProvider,
	completer portssvc.AssistantCompleter,
) portssvc.AssistantSvcFacade {
	return &assistantService{
		productRepo:       repos.ProductRepo,
		transactionRepo:   repos.TransactionRepo,
		employeeRepo:      repos.EmployeeRepo,
		assetRepo:         repos.AssetRepo,
		accountRepo:       repos.AccountRepo,
		paymentConfigRepo: repos.PaymentConfigRepo,
		completer:         completer,
	}
}

// Ensure assistantService implements the AssistantSvcFacade interface
var _ portssvc.AssistantSvcFacade = (*assistantService)(nil)

func (s *assistantService) Query(ctx context.Context, userText string) (*dto.AssistantReplyResponse, error) {
	prompt, err := s.buildSystemPrompt(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to assemble business snapshot for assistant")
		return &dto.AssistantReplyResponse{Reply: assistantFallbackReply}, nil
	}

	reply, err := s.completer.Complete(ctx, prompt, userText)
	if err != nil {
		s.LogError(ctx, err, "Assistant completion failed")
		return &dto.AssistantReplyResponse{Reply: assistantFallbackReply}, nil
	}

	return &dto.AssistantReplyResponse{Reply: reply}, nil
}

func (s *assistantService) buildSystemPrompt(ctx context.Context) (string, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return "", err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return "", err
	}
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return "", err
	}
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		return "", err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return "", err
	}
	cfg, err := s.paymentConfigRepo.GetPaymentConfig(ctx)
	if err != nil {
		return "", err
	}

	snapshot := businessSnapshot{
		Products:     products,
		Transactions: txns,
		Employees:    employees,
		Assets:       assets,
		Accounts:     accounts,
		PaymentConfig: snapshotPaymentConfig{
			ActiveGateway: cfg.ActiveGateway,
			IsSandbox:     cfg.IsSandbox,
		},
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(assistantSystemPromptFmt, string(data)), nil
}
