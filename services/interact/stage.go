package interact

import (
	"fmt"
	"time"
)

// Stage is a step of the workflow. Stages are passed strictly in order.
type Stage int

const (
	StageStart Stage = iota
	StageFunded
	StageBalancesRead
	StageGreeted
	StageOverridesBuilt
	StageWritten
	StageConfirmed
	StageGreetedAgain
	StageBalancesReadAgain
	StageDone
)

var stageNames = [...]string{
	StageStart:             "start",
	StageFunded:            "funded",
	StageBalancesRead:      "balances-read",
	StageGreeted:           "greeted",
	StageOverridesBuilt:    "overrides-built",
	StageWritten:           "written",
	StageConfirmed:         "confirmed",
	StageGreetedAgain:      "greeted-again",
	StageBalancesReadAgain: "balances-read-again",
	StageDone:              "done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StageError is returned by Workflow.Run; Stage is the stage that was being entered.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type StageTiming struct {
	Stage    Stage         `json:"stage"`
	Duration time.Duration `json:"duration"`
}
