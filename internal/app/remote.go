package app

import (
	"context"

	"combustion/internal/domain"
)

// remoteCalculations runs calculations on a thermod server.
type remoteCalculations struct {
	client domain.RemoteClient
}

func (r remoteCalculations) Calculate(
	ctx context.Context,
	request domain.CalculationRequest,
) (domain.CalculationResult, error) {
	return r.client.Calculate(ctx, request)
}

var _ domain.CalculationService = remoteCalculations{}
