package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/markusressel/fps2go/internal/actuator"
	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/load"
	"github.com/markusressel/fps2go/internal/notify"
	"github.com/markusressel/fps2go/internal/policy"
	"github.com/markusressel/fps2go/internal/ui"
)

// unsetValue marks that no limit has been applied yet, limits are never negative
const unsetValue = -1

var ErrAlreadyRunning = errors.New("limit controller is already running")

type State int

const (
	StateStopped State = iota
	StateEnabled
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	default:
		return "stopped"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "enabled":
		*s = StateEnabled
	case "disabled":
		*s = StateDisabled
	case "stopped":
		*s = StateStopped
	default:
		return fmt.Errorf("unknown state: %s", text)
	}
	return nil
}

// Status is a read-only snapshot of the controller state
type Status struct {
	State   State `json:"state"`
	Enabled bool  `json:"enabled"`
	// CurrentValue is the last applied limit, nil if none was applied yet
	CurrentValue *int `json:"currentValue"`
	// CurrentLoad is the load seen by the last evaluation
	CurrentLoad int `json:"currentLoad"`
}

type Statistics struct {
	EvaluationCount   int64
	ApplyCount        int64
	ApplyFailureCount int64
	NotificationCount int64
}

type LimitController interface {
	// Start begins controlling the limit, evaluating immediately if enabled
	Start() error
	// Stop ends the control loop and applies the neutral limit
	Stop()
	// Run starts the controller and stops it once ctx is done
	Run(ctx context.Context) error

	// OnLoadChanged triggers an immediate evaluation, call it on every join/leave
	OnLoadChanged()
	// Toggle flips between enabled and disabled, returns the new enabled state
	Toggle() bool

	Status() Status
	GetConfig() configuration.LimiterConfig
	GetStatistics() Statistics
}

type limitController struct {
	config   configuration.LimiterConfig
	source   load.Source
	actuator actuator.Actuator
	notifier notify.Notifier

	// lifecycle serializes Start and Stop
	lifecycle sync.Mutex

	// mu guards everything below, every evaluation runs while holding it
	mu           sync.Mutex
	state        State
	enabled      bool
	currentValue int
	lastLoad     int
	stats        Statistics

	stopTimer chan struct{}
	timerDone chan struct{}
}

func NewLimitController(
	config configuration.LimiterConfig,
	source load.Source,
	actuator actuator.Actuator,
	notifier notify.Notifier,
) LimitController {
	return &limitController{
		config:       config,
		source:       source,
		actuator:     actuator,
		notifier:     notifier,
		state:        StateStopped,
		enabled:      config.Enabled,
		currentValue: unsetValue,
	}
}

func (c *limitController) Start() error {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateStopped {
		return ErrAlreadyRunning
	}

	c.currentValue = unsetValue
	c.lastLoad = 0
	c.stopTimer = make(chan struct{})
	c.timerDone = make(chan struct{})

	if c.enabled {
		c.state = StateEnabled
		ui.Info("Starting limit controller (interval: %s)", c.config.Interval())
		c.evaluate()
	} else {
		c.state = StateDisabled
		ui.Info("Starting limit controller in disabled state")
	}

	go c.runTimer(c.config.Interval(), c.stopTimer, c.timerDone)
	return nil
}

func (c *limitController) Stop() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	if c.state == StateStopped {
		c.mu.Unlock()
		return
	}
	c.state = StateStopped
	close(c.stopTimer)
	timerDone := c.timerDone
	c.mu.Unlock()

	// a tick may be waiting for the lock, it sees StateStopped and returns
	<-timerDone

	c.mu.Lock()
	defer c.mu.Unlock()
	neutral := c.config.Neutral()
	ui.Info("Stopping limit controller, restoring limit: %d", neutral)
	c.applyValue(neutral)
	c.currentValue = unsetValue
}

func (c *limitController) Run(ctx context.Context) error {
	if err := c.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	c.Stop()
	return nil
}

func (c *limitController) runTimer(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.onTick()
		}
	}
}

func (c *limitController) onTick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateEnabled {
		return
	}
	c.evaluate()
}

func (c *limitController) OnLoadChanged() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateEnabled {
		return
	}
	c.evaluate()
}

func (c *limitController) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enabled = !c.enabled

	switch c.state {
	case StateEnabled:
		c.state = StateDisabled
		ui.Info("Limit controller disabled, applying limit: %d", c.config.MaxValue)
		c.applyValue(c.config.MaxValue)
	case StateDisabled:
		c.state = StateEnabled
		ui.Info("Limit controller enabled")
		c.evaluate()
	}

	return c.enabled
}

func (c *limitController) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := Status{
		State:       c.state,
		Enabled:     c.enabled,
		CurrentLoad: c.lastLoad,
	}
	if c.currentValue != unsetValue {
		value := c.currentValue
		status.CurrentValue = &value
	}
	return status
}

func (c *limitController) GetConfig() configuration.LimiterConfig {
	return c.config
}

func (c *limitController) GetStatistics() Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// evaluate computes the limit for the current load and applies it if it changed.
// Must be called while holding mu.
func (c *limitController) evaluate() {
	c.stats.EvaluationCount++

	currentLoad := c.readLoad()
	c.lastLoad = currentLoad

	target := policy.ComputeTarget(currentLoad, c.config)
	if target == c.currentValue {
		ui.Debug("Limit for load %d unchanged: %d", currentLoad, target)
		return
	}

	previous := c.currentValue
	c.applyValue(target)

	if c.config.NotifyOnChange && currentLoad > 0 {
		c.notifyChange(previous, target, currentLoad)
	}
}

func (c *limitController) readLoad() int {
	value, err := c.source.GetLoad()
	if err != nil {
		ui.Warning("Unable to read load from source %s, assuming idle: %v", c.source.GetId(), err)
		return 0
	}
	if value < 0 {
		ui.Warning("Load source %s reported negative load %d, assuming idle", c.source.GetId(), value)
		return 0
	}
	return value
}

// applyValue hands the value to the actuator. The new value is recorded
// even if the actuator fails, the failure is only logged and counted.
func (c *limitController) applyValue(value int) {
	c.stats.ApplyCount++
	if err := c.actuator.Apply(value); err != nil {
		c.stats.ApplyFailureCount++
		ui.Error("Unable to apply limit %d using actuator %s: %v", value, c.actuator.GetId(), err)
	} else {
		ui.Info("Applied limit: %d (load: %d)", value, c.lastLoad)
	}
	c.currentValue = value
}

func (c *limitController) notifyChange(previous int, value int, currentLoad int) {
	params := notify.Params{
		"previous": previous,
		"value":    value,
		"load":     currentLoad,
	}
	if previous == unsetValue {
		params["previous"] = "-"
	}
	if err := c.notifier.Notify(notify.AudiencePrivileged, notify.KeyLimitChanged, params); err != nil {
		ui.Warning("Unable to send notification: %v", err)
		return
	}
	c.stats.NotificationCount++
}
