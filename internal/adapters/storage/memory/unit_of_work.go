package memory

import (
	"context"

	appctx "github.com/jsamuelsen11/devflix-admin/internal/app/context"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

var _ ports.UnitOfWork = UnitOfWork{}

// UnitOfWork commits the request's staged actions against the Store. Failed
// actions are compensated by their Rollback.
type UnitOfWork struct{}

// Commit executes every action staged in this request.
func (UnitOfWork) Commit(ctx context.Context) error {
	rc, err := appctx.Require(ctx)
	if err != nil {
		return err
	}
	return rc.Commit(ctx)
}
