package goal

import (
	"fmt"

	"github.com/Enryuk3/kash-app/pkg/domain"
)

// ErrGoalNotFound is returned when a goal is missing or owned by someone else.
var ErrGoalNotFound = fmt.Errorf("goal not found: %w", domain.ErrNotFound)
