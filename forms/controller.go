package forms

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// ErrSubmissionInProgress is returned when a form is submitted while a previous
// submission of the same form has not finished yet
var ErrSubmissionInProgress = errors.New("form submission already in progress")

// State is the stage a form is in
type State int32

const (
	Idle State = iota
	Validating
	Invalid
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Invalid:
		return "invalid"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// SubmitFunc performs the submission of a form that passed validation
type SubmitFunc func(ctx context.Context) error

// Outcome is the result of a submit attempt
type Outcome struct {
	// FieldErrors is set when the form did not validate, submission was skipped
	FieldErrors FieldErrors
	// Err is the error returned by the submission
	Err error
}

// Invalid reports whether the attempt stopped at validation
func (o Outcome) Invalid() bool {
	return len(o.FieldErrors) > 0
}

// Succeeded reports whether the form validated and was submitted without error
func (o Outcome) Succeeded() bool {
	return !o.Invalid() && o.Err == nil
}

// Controller drives a single form through validation and submission:
//
//	Idle -> Validating -> Invalid -> Idle
//	Idle -> Validating -> Idle                (a pre-submit check failed)
//	Idle -> Validating -> Submitting -> Idle
//
// The loading flag is raised for exactly as long as the controller is Submitting.
type Controller struct {
	validator *Validator
	state     atomic.Int32
	loading   atomic.Bool
	observers []func(from, to State)
	checks    []func() error
}

// NewController creates a Controller in the Idle state
func NewController(validator *Validator) *Controller {
	return &Controller{validator: validator}
}

// OnTransition registers fn to be called on every state change. Observers
// must be registered before Submit is called.
func (c *Controller) OnTransition(fn func(from, to State)) {
	c.observers = append(c.observers, fn)
}

// BeforeSubmit registers check to run once the form is valid. A failing check
// ends the attempt with its error before the controller starts Submitting.
func (c *Controller) BeforeSubmit(check func() error) {
	c.checks = append(c.checks, check)
}

// State returns the current state of the form
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Loading reports whether a submission is running
func (c *Controller) Loading() bool {
	return c.loading.Load()
}

// Submit validates form and, when it is valid, runs submit. The controller is
// back in the Idle state with the loading flag cleared when Submit returns.
func (c *Controller) Submit(ctx context.Context, form interface{}, submit SubmitFunc) Outcome {
	if !c.state.CompareAndSwap(int32(Idle), int32(Validating)) {
		return Outcome{Err: ErrSubmissionInProgress}
	}
	c.notify(Idle, Validating)

	if fieldErrs := c.validator.Validate(form); len(fieldErrs) > 0 {
		c.transition(Validating, Invalid)
		c.transition(Invalid, Idle)
		return Outcome{FieldErrors: fieldErrs}
	}

	for _, check := range c.checks {
		if err := check(); err != nil {
			c.transition(Validating, Idle)
			return Outcome{Err: err}
		}
	}

	c.loading.Store(true)
	c.transition(Validating, Submitting)
	defer func() {
		c.loading.Store(false)
		c.transition(Submitting, Idle)
	}()

	return Outcome{Err: submit(ctx)}
}

func (c *Controller) transition(from, to State) {
	c.state.Store(int32(to))
	c.notify(from, to)
}

func (c *Controller) notify(from, to State) {
	for _, observer := range c.observers {
		observer(from, to)
	}
}
