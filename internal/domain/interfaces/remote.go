package interfaces

import (
	"context"

	domaintypes "combustion/internal/domain/types"
)

// RemoteClient talks to a thermod calculation server, all with context.
type RemoteClient interface {
	Calculate(
		ctx context.Context,
		request domaintypes.CalculationRequest,
	) (domaintypes.CalculationResult, error)
	FetchMaterial(ctx context.Context, formula domaintypes.Formula) (domaintypes.Material, error)
	ListMaterials(ctx context.Context) ([]domaintypes.Material, error)
	PublishMaterial(ctx context.Context, material domaintypes.Material) error
}
