package leave

import "fmt"

// Chain is the ordered approval sequence for a request. Three stages is the
// standard N1 -> N2 -> HR chain; shorter chains keep the HR stage last and
// collapse the final status to "approved".
type Chain struct {
	stages []Stage
}

// NewChain builds a chain of n stages, clamped to [1, 3].
func NewChain(n int) Chain {
	switch {
	case n <= 1:
		return Chain{stages: []Stage{StageHR}}
	case n == 2:
		return Chain{stages: []Stage{StageN1, StageHR}}
	default:
		return Chain{stages: []Stage{StageN1, StageN2, StageHR}}
	}
}

// Len returns the number of stages in the chain.
func (c Chain) Len() int {
	return len(c.stages)
}

// Stages returns the ordered stage list.
func (c Chain) Stages() []Stage {
	return c.stages
}

// Contains reports whether the stage participates in this chain.
func (c Chain) Contains(stage Stage) bool {
	for _, s := range c.stages {
		if s == stage {
			return true
		}
	}
	return false
}

// Expected returns the request status a stage may act on: pending for the
// first stage, the previous stage's approved status otherwise.
func (c Chain) Expected(stage Stage) (RequestStatus, error) {
	for i, s := range c.stages {
		if s != stage {
			continue
		}
		if i == 0 {
			return StatusPending, nil
		}
		return c.statusAfterIndex(i - 1), nil
	}
	return "", fmt.Errorf("stage %q is not part of a %d-stage approval chain", stage, len(c.stages))
}

// After returns the status a successful approval at this stage produces.
// The full three-stage chain ends on approved_hr; shorter chains end on
// approved.
func (c Chain) After(stage Stage) (RequestStatus, error) {
	for i, s := range c.stages {
		if s == stage {
			return c.statusAfterIndex(i), nil
		}
	}
	return "", fmt.Errorf("stage %q is not part of a %d-stage approval chain", stage, len(c.stages))
}

func (c Chain) statusAfterIndex(i int) RequestStatus {
	if i == len(c.stages)-1 {
		if len(c.stages) == 3 {
			return StatusApprovedHR
		}
		return StatusApproved
	}
	switch c.stages[i] {
	case StageN1:
		return StatusApprovedN1
	default:
		return StatusApprovedN2
	}
}
