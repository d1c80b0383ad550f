// Package core ties the command validator, handlers, day-advance pipeline,
// and invariant verifier together into the single pure transition function
// the rest of the system observes: Step(state, command, rng) → (state',
// events). It is the sole mutation boundary; every sub-package only ever
// returns candidate next-states as values.
package core

import (
	"guildhall/config"
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/handlers"
	"guildhall/core/invariants"
	"guildhall/core/pipeline"
	"guildhall/core/rng"
	"guildhall/core/seqctx"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/core/validate"
)

// Engine wraps the pure transition function with nothing but a name; it
// holds no state of its own beyond what callers pass in.
type Engine struct{}

// NewEngine returns an Engine that runs with whatever balance constants the
// pipeline and handlers packages currently hold: the built-in defaults unless
// NewEngineWithConstants has installed others earlier in the process. Its zero
// value is equally usable; the constructor exists so call sites read like
// other adapters' engines.
func NewEngine() Engine { return Engine{} }

// NewEngineWithConstants wires a loaded config.Constants into the pipeline
// and handlers packages' tunable values, then returns an Engine. This is the
// one seam through which the config package's BurntSushi/toml-loaded values
// reach the reducer: pipeline and handlers never read a config.Constants
// themselves, only the package-level values this call overwrites once,
// before any Step runs.
func NewEngineWithConstants(c config.Constants) (Engine, error) {
	if err := c.Validate(); err != nil {
		return Engine{}, err
	}
	if err := pipeline.Configure(pipeline.Constants{
		RankMultiplierBase:             c.RankMultiplierBase,
		ClientPaysChancePercent:        c.ClientPaysChancePercent,
		ClientPaysFractionBP:           c.ClientPaysFractionBP,
		StabilityPenaltyBadAutoResolve: c.StabilityPenaltyBadAutoResolve,
		AutoResolveIntervalDays:        c.AutoResolveIntervalDays,
		SuccessChanceMin:               c.SuccessChanceMin,
		SuccessChanceMax:               c.SuccessChanceMax,
		PartialChanceFixed:             c.PartialChanceFixed,
		FailChanceMin:                  c.FailChanceMin,
		MissingChancePercent:           c.MissingChancePercent,
		PayoutATailChancePercent:       c.PayoutATailChancePercent,
		TaxPenaltyPercent:              c.TaxPenaltyPercent,
		TaxMaxMissed:                   c.TaxMaxMissed,
		TaxIntervalDays:                c.TaxIntervalDays,
		TaxBaseAmountGold:              c.TaxBaseAmountGold,
	}); err != nil {
		return Engine{}, err
	}
	handlers.Configure(c.PricePerTrophyCopper)
	return Engine{}, nil
}

// Step is the reducer's single entry point: validate, bump the revision,
// dispatch, verify invariants, renumber the event list.
func (Engine) Step(s state.GameState, cmd command.Command, r *rng.Source) (state.GameState, []types.EventRecord) {
	result := validate.Validate(s, cmd)
	if !result.Ok {
		ctx := seqctx.New(s.Meta.DayIndex, s.Meta.Revision, cmd.CmdID)
		ctx.EmitEvent(events.CommandRejected{
			CmdType: cmd.Kind.String(),
			Reason:  result.Reason,
			Detail:  result.Detail,
		})
		return s, ctx.RenumberFrom1()
	}

	s.Meta.Revision++
	day := s.Meta.DayIndex
	if cmd.Kind == command.AdvanceDay {
		// A day tick's events belong to the day it opens.
		day++
	}
	ctx := seqctx.New(day, s.Meta.Revision, cmd.CmdID)

	// Handlers and phases assign into slice elements, so they work on a
	// private copy and the caller's state is left untouched.
	newState, err := dispatch(s.Clone(), cmd, r, ctx)
	if err != nil {
		ctx.EmitEvent(events.CommandRejected{
			CmdType: cmd.Kind.String(),
			Reason:  events.ReasonInvalidState,
			Detail:  err.Error(),
		})
		return s, ctx.RenumberFrom1()
	}

	violations := invariants.Verify(newState)
	if len(violations) > 0 {
		extra := make([]events.Event, len(violations))
		for i, v := range violations {
			extra[i] = events.InvariantViolated{ID: v.ID, Details: v.Details}
		}
		ctx.InsertBeforeDayEnded(ctx.BuildRecords(extra))
	}

	return newState, ctx.RenumberFrom1()
}

// dispatch runs the day-advance pipeline or the appropriate single-command
// handler. AdvanceDay is the only command that can fail after validation
// (an RNG misuse would be a programming error, not a rejectable command,
// but surfacing it as a rejection keeps Step total rather than panicking).
func dispatch(s state.GameState, cmd command.Command, r *rng.Source, ctx *seqctx.Context) (state.GameState, error) {
	switch cmd.Kind {
	case command.AdvanceDay:
		return pipeline.AdvanceDay(s, r, ctx)
	case command.PostContract:
		return handlers.PostContract(s, cmd, ctx), nil
	case command.CloseReturn:
		return handlers.CloseReturn(s, cmd, ctx), nil
	case command.SellTrophies:
		return handlers.SellTrophies(s, cmd, ctx), nil
	case command.PayTax:
		return handlers.PayTax(s, cmd, ctx), nil
	case command.SetProofPolicy:
		return handlers.SetProofPolicy(s, cmd, ctx), nil
	case command.CreateContract:
		return handlers.CreateContract(s, cmd, ctx), nil
	case command.UpdateContractTerms:
		return handlers.UpdateContractTerms(s, cmd, ctx), nil
	case command.CancelContract:
		return handlers.CancelContract(s, cmd, ctx), nil
	default:
		return s, nil
	}
}
