package inventory

import (
	"context"

	"github.com/tu-usuario/lacteos-pro/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción SQL con repositorios
// atados a la tx. Commit si fn devuelve nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		rawRepo repository.RawMaterialRepository,
		productRepo repository.ProductRepository,
	) error) error
}
