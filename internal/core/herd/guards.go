// Package herd contains the pure business logic for recording herd
// events. Guards are pure functions that evaluate preconditions
// without side effects.
package herd

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// TreatmentContext provides context for treatment recording guards.
type TreatmentContext struct {
	ProductID      int64
	ProductExists  bool
	AnimalCount    int  // animals selected directly
	HasMob         bool // treating a whole mob instead
	MobAnimalCount int  // only checked if HasMob
}

// WeighContext provides context for weigh recording guards.
type WeighContext struct {
	AnimalID     int64
	AnimalExists bool
	WeightKg     float64
}

// MovementContext provides context for movement recording guards.
type MovementContext struct {
	HasAnimal       bool
	HasMob          bool
	ToPaddockID     int64
	ToPaddockExists bool
}

// CanRecordTreatment evaluates whether a treatment can be recorded.
// Rules:
// - Product must exist
// - Exactly one subject: a set of animals or a mob, not both, not neither
// - A mob treatment needs at least one animal in the mob
func CanRecordTreatment(ctx TreatmentContext) GuardResult {
	if !ctx.ProductExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("product %d not found", ctx.ProductID),
		}
	}

	if ctx.AnimalCount > 0 && ctx.HasMob {
		return GuardResult{
			Allowed: false,
			Reason:  "treatment takes either animals or a mob, not both",
		}
	}
	if ctx.AnimalCount == 0 && !ctx.HasMob {
		return GuardResult{
			Allowed: false,
			Reason:  "treatment needs at least one animal or a mob",
		}
	}

	if ctx.HasMob && ctx.MobAnimalCount == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "mob has no animals to treat",
		}
	}

	return GuardResult{Allowed: true}
}

// CanRecordWeigh evaluates whether a weight can be recorded.
// Rules:
// - Animal must exist
// - Weight must be positive
func CanRecordWeigh(ctx WeighContext) GuardResult {
	if !ctx.AnimalExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("animal %d not found", ctx.AnimalID),
		}
	}

	if ctx.WeightKg <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("weight must be positive, got %.1f", ctx.WeightKg),
		}
	}

	return GuardResult{Allowed: true}
}

// CanRecordMovement evaluates whether a movement can be recorded.
// Rules:
// - Exactly one subject: an animal or a mob
// - Destination paddock must exist
func CanRecordMovement(ctx MovementContext) GuardResult {
	if ctx.HasAnimal && ctx.HasMob {
		return GuardResult{
			Allowed: false,
			Reason:  "movement takes either an animal or a mob, not both",
		}
	}
	if !ctx.HasAnimal && !ctx.HasMob {
		return GuardResult{
			Allowed: false,
			Reason:  "movement needs an animal or a mob",
		}
	}

	if !ctx.ToPaddockExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("paddock %d not found", ctx.ToPaddockID),
		}
	}

	return GuardResult{Allowed: true}
}
