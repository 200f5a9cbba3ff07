// SPDX-License-Identifier: MIT

// Package contact implements the contact form lifecycle. Submissions are
// logged and acknowledged after a simulated delay; nothing is sent or stored.
package contact

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/temotunadze/lawfolio/internal/schedule"
	"go.uber.org/zap"
)

// Phase is the position of the form in its lifecycle
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

const (
	DefaultSubmitDelay = 1500 * time.Millisecond
	DefaultResetDelay  = 3 * time.Second
)

var (
	// ErrBusy is returned when the form is not idle
	ErrBusy = errors.New("contact form submission already in progress")
	// ErrUnknownField is returned by UpdateField for names outside the form
	ErrUnknownField = errors.New("unknown contact form field")
	// ErrClosed is returned after Close
	ErrClosed = errors.New("contact form is closed")
)

// Fields holds the visitor's input
type Fields struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message" validate:"required"`
}

// FieldError describes one rejected field
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists the fields that blocked a submission
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s (%s)", f.Field, f.Rule)
	}
	return "invalid contact form: " + strings.Join(parts, ", ")
}

// Has reports whether field was rejected
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Snapshot is a copy of the form state
type Snapshot struct {
	Phase      Phase  `json:"phase"`
	Fields     Fields `json:"fields"`
	Submitting bool   `json:"submitting"`
	Submitted  bool   `json:"submitted"`
}

// Options configures a FormState. Zero values use the defaults.
type Options struct {
	SubmitDelay time.Duration
	ResetDelay  time.Duration
	Scheduler   schedule.Scheduler
	Logger      *zap.Logger
}

// FormState is the contact form state machine: Idle → Submitting → Submitted → Idle
type FormState struct {
	mu          sync.Mutex
	fields      Fields
	phase       Phase
	pending     schedule.Task
	closed      bool
	listeners   map[int]func(Snapshot)
	nextID      int
	submitDelay time.Duration
	resetDelay  time.Duration
	scheduler   schedule.Scheduler
	log         *zap.Logger
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// fieldValidator reports errors under the json field names
func fieldValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// NewFormState creates an idle form
func NewFormState(opts Options) *FormState {
	if opts.SubmitDelay <= 0 {
		opts.SubmitDelay = DefaultSubmitDelay
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = DefaultResetDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &FormState{
		phase:       PhaseIdle,
		listeners:   make(map[int]func(Snapshot)),
		submitDelay: opts.SubmitDelay,
		resetDelay:  opts.ResetDelay,
		scheduler:   opts.Scheduler,
		log:         opts.Logger,
	}
}

// UpdateField stores a single input value
func (f *FormState) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	if f.phase != PhaseIdle {
		return ErrBusy
	}

	switch name {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "subject":
		f.fields.Subject = value
	case "message":
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// SetFields replaces every input value at once
func (f *FormState) SetFields(fields Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	if f.phase != PhaseIdle {
		return ErrBusy
	}
	f.fields = fields
	return nil
}

func validateFields(fields Fields) error {
	err := fieldValidator().Struct(fields)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate contact form: %w", err)
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

// Submit starts the simulated submission. A form with a missing required
// field is rejected with a *ValidationError and stays idle.
func (f *FormState) Submit() error {
	f.mu.Lock()

	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if f.phase != PhaseIdle {
		f.mu.Unlock()
		return ErrBusy
	}
	if err := validateFields(f.fields); err != nil {
		f.mu.Unlock()
		return err
	}

	f.log.Info("contact form submitted",
		zap.String("name", f.fields.Name),
		zap.String("email", f.fields.Email),
		zap.String("subject", f.fields.Subject),
		zap.String("message", f.fields.Message),
	)

	f.phase = PhaseSubmitting
	f.pending = f.scheduler.After(f.submitDelay, f.acknowledge)
	snap := f.snapshotLocked()
	listeners := f.listenersLocked()
	f.mu.Unlock()

	notify(listeners, snap)
	return nil
}

// acknowledge fires after the submit delay
func (f *FormState) acknowledge() {
	f.mu.Lock()
	if f.closed || f.phase != PhaseSubmitting {
		f.mu.Unlock()
		return
	}

	f.phase = PhaseSubmitted
	f.pending = f.scheduler.After(f.resetDelay, f.reset)
	snap := f.snapshotLocked()
	listeners := f.listenersLocked()
	f.mu.Unlock()

	f.log.Debug("contact form acknowledged")
	notify(listeners, snap)
}

// reset fires after the reset delay and returns the form to idle
func (f *FormState) reset() {
	f.mu.Lock()
	if f.closed || f.phase != PhaseSubmitted {
		f.mu.Unlock()
		return
	}

	f.phase = PhaseIdle
	f.fields = Fields{}
	f.pending = nil
	snap := f.snapshotLocked()
	listeners := f.listenersLocked()
	f.mu.Unlock()

	notify(listeners, snap)
}

// Phase returns the current lifecycle phase
func (f *FormState) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Snapshot returns a copy of the current state
func (f *FormState) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *FormState) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:      f.phase,
		Fields:     f.fields,
		Submitting: f.phase == PhaseSubmitting,
		Submitted:  f.phase == PhaseSubmitted,
	}
}

// OnChange registers fn to receive a snapshot after every phase transition
func (f *FormState) OnChange(fn func(Snapshot)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := f.nextID
	f.listeners[id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

func (f *FormState) listenersLocked() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(f.listeners))
	for id := 1; id <= f.nextID; id++ {
		if fn, ok := f.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(listeners []func(Snapshot), snap Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}

// Close cancels any pending transition and drops listeners. The form keeps
// its last state but never changes again.
func (f *FormState) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	if f.pending != nil {
		f.pending.Cancel()
		f.pending = nil
	}
	f.listeners = make(map[int]func(Snapshot))
}
