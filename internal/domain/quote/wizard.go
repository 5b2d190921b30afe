package quote

import (
	"errors"
	"fmt"

	"hometheater_quote/internal/domain/entities"
)

// Step is a state of the quote wizard.
type Step int

const (
	StepContactInfo Step = iota
	StepSelectServices
	StepVerifyAndSubmit
)

var stepNames = [...]string{"Contact Info", "Select Services", "Verify & Submit"}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

func (s Step) Valid() bool {
	return s >= StepContactInfo && s <= StepVerifyAndSubmit
}

// Steps lists the wizard states in order.
func Steps() []Step {
	return []Step{StepContactInfo, StepSelectServices, StepVerifyAndSubmit}
}

// Action is a wizard transition.
type Action string

const (
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"
)

// Reason explains why a transition was refused. It is empty when the
// wizard moved.
type Reason string

const (
	ReasonValidationFailed Reason = "validation_failed"
	ReasonAtFirstStep      Reason = "at_first_step"
	ReasonAtLastStep       Reason = "at_last_step"
)

var (
	ErrInvalidStep   = errors.New("invalid wizard step")
	ErrInvalidAction = errors.New("invalid wizard action")
)

// TransitionResult is returned by every wizard transition. When Moved is
// false, To equals From and Reason says why.
type TransitionResult struct {
	From       Step
	To         Step
	Moved      bool
	Reason     Reason
	Validation *ValidationError
}

// Wizard is the linear three-state quote flow. The zero value starts at
// StepContactInfo.
type Wizard struct {
	step Step
}

func NewWizard() *Wizard {
	return &Wizard{step: StepContactInfo}
}

// WizardAt restores a wizard at a given step, for callers that keep the step
// on the client.
func WizardAt(step Step) (*Wizard, error) {
	if !step.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, int(step))
	}
	return &Wizard{step: step}, nil
}

func (w *Wizard) Step() Step {
	return w.step
}

// Next moves forward one step. Leaving StepContactInfo requires a name and
// a phone; leaving StepSelectServices has no guard.
func (w *Wizard) Next(d entities.QuoteDraft) TransitionResult {
	from := w.step
	if from == StepVerifyAndSubmit {
		return TransitionResult{From: from, To: from, Reason: ReasonAtLastStep}
	}
	if from == StepContactInfo {
		if verr := ValidateContact(d); verr != nil {
			return TransitionResult{From: from, To: from, Reason: ReasonValidationFailed, Validation: verr}
		}
	}
	w.step = from + 1
	return TransitionResult{From: from, To: w.step, Moved: true}
}

// Previous moves back one step; it only fails on the first step.
func (w *Wizard) Previous() TransitionResult {
	from := w.step
	if from == StepContactInfo {
		return TransitionResult{From: from, To: from, Reason: ReasonAtFirstStep}
	}
	w.step = from - 1
	return TransitionResult{From: from, To: w.step, Moved: true}
}

// Apply dispatches an Action by name.
func (w *Wizard) Apply(a Action, d entities.QuoteDraft) (TransitionResult, error) {
	switch a {
	case ActionNext:
		return w.Next(d), nil
	case ActionPrevious:
		return w.Previous(), nil
	default:
		return TransitionResult{}, fmt.Errorf("%w: %q", ErrInvalidAction, a)
	}
}
