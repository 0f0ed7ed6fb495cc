package devon

import (
	"context"
	"fmt"
)

// Aggregate runs each analyzer in turn, renders every diagnostic it reports
// and returns the items in analyzer order. The first failure aborts; there
// is no partial result.
func Aggregate(ctx context.Context, r Renderer, analyzers ...Analyzer) (*Store, error) {
	groups := make([][]Item, 0, len(analyzers))
	for _, a := range analyzers {
		diags, err := a.Run(ctx)
		if err != nil {
			return nil, err
		}

		items := make([]Item, 0, len(diags))
		for _, d := range diags {
			item, err := r.Render(d)
			if err != nil {
				return nil, fmt.Errorf("render %s diagnostic: %w", a.Name(), err)
			}
			items = append(items, item)
		}
		groups = append(groups, items)
	}
	return NewStore(groups...), nil
}
