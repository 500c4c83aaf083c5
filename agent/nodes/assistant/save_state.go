package assistantnode

import (
	"context"
	"fmt"

	contractx "github.com/natthawee/shopflow/agent/contract"
	statex "github.com/natthawee/shopflow/agent/state"
)

func SaveState(
	ctx context.Context,
	in *GraphState,
	store statex.Store,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Session.Touch(in.Now)
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, err
	}
	return in, nil
}
