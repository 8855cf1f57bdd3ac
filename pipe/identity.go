package pipe

import "context"

// Identity returns its argument unchanged.
func Identity[T any](_ context.Context, v T) (T, error) {
	return v, nil
}
