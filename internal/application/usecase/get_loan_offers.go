package usecase

import (
	"context"

	"github.com/stellarcredit/credit-service/internal/application/dto"
	"github.com/stellarcredit/credit-service/internal/domain/service"
)

// GetLoanOffersUseCase lists the fixed catalog offers a score qualifies for.
// Pure computation: no storage access, no auth.
type GetLoanOffersUseCase struct {
	catalog *service.OfferCatalog
}

// NewGetLoanOffersUseCase wires dependencies.
func NewGetLoanOffersUseCase(catalog *service.OfferCatalog) *GetLoanOffersUseCase {
	return &GetLoanOffersUseCase{catalog: catalog}
}

// Execute returns the offer menu for the score.
func (uc *GetLoanOffersUseCase) Execute(
	_ context.Context,
	req dto.GetLoanOffersRequest,
) (dto.LoanOffersResponse, error) {
	offers := uc.catalog.OffersFor(req.Score)

	out := make([]dto.CatalogOfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, dto.CatalogOfferResponse{
			Description:    o.Description,
			Amount:         o.Amount.Decimal(),
			MonthlyRate:    o.MonthlyRate.Decimal(),
			DurationMonths: o.DurationMonths,
		})
	}

	return dto.LoanOffersResponse{Score: req.Score, Offers: out}, nil
}
