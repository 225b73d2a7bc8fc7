package stock

import (
	"context"

	"github.com/jhoicas/mayorista-api/internal/application/dto"
	"github.com/jhoicas/mayorista-api/internal/domain"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

// TicketGenerator puerto de generación del ticket de venta en PDF.
type TicketGenerator interface {
	GenerateSaleTicket(ctx context.Context, sale *dto.SaleResponse) ([]byte, error)
}

// TicketUseCase arma el ticket imprimible de una venta.
type TicketUseCase struct {
	saleRepo  repository.SaleRepository
	generator TicketGenerator
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(saleRepo repository.SaleRepository, generator TicketGenerator) *TicketUseCase {
	return &TicketUseCase{saleRepo: saleRepo, generator: generator}
}

// Generate busca la venta y devuelve los bytes del PDF del ticket.
func (uc *TicketUseCase) Generate(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSaleResponse(sale)
	return uc.generator.GenerateSaleTicket(ctx, &resp)
}
