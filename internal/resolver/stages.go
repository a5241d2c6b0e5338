package resolver

import (
	"fmt"

	"go.uber.org/zap"
)

// Stage is one adjustment step in the pipeline. Apply reads the state and
// returns its signed contribution plus a human-readable explanation; it must
// not mutate the state (the resolver folds the delta in). A stage with
// missing inputs returns a zero delta and an explanation naming what was
// missing; stages never error and never partially apply.
type Stage interface {
	Name() string
	Apply(st *State) (StageDelta, string)
}

// DefaultStages returns the pipeline in its fixed execution order. The order
// is a correctness invariant, not a preference: turnovers and free-throw rate
// already enter the possession formula, so the turnover stage must run
// immediately after pace to adjust efficiency only, and the volume stage uses
// deliberately conservative thresholds for the same reason.
func DefaultStages() []Stage {
	return []Stage{
		paceStage{},
		turnoverStage{},
		defenseStage{},
		matchupStage{},
		volumeStage{},
		shootoutStage{},
		homeRoadStage{},
		fatigueStage{},
	}
}

// guarded wraps a stage so an internal fault degrades to a zero-delta no-op
// with a logged reason instead of aborting the pipeline.
type guarded struct {
	stage  Stage
	logger *zap.SugaredLogger
}

func (g guarded) Name() string { return g.stage.Name() }

func (g guarded) Apply(st *State) (d StageDelta, expl string) {
	defer func() {
		if r := recover(); r != nil {
			if g.logger != nil {
				g.logger.Errorw("Stage panicked, degrading to no-op",
					"stage", g.stage.Name(), "reason", r)
			}
			d = StageDelta{}
			expl = fmt.Sprintf("%s skipped: internal fault", g.stage.Name())
		}
	}()
	return g.stage.Apply(st)
}
