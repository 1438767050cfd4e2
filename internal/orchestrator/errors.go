package orchestrator

import (
	"errors"
	"fmt"
)

var errNilPlan = errors.New("planner returned no plan")

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("planner panicked: %v", e.value)
}
