package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// Common cron expressions
	EveryHour     = "0 * * * *"
	DailyMidnight = "0 0 * * *"
	DailyAt3AM    = "0 3 * * *"

	executionKeyPrefix = "referme:jobs:cron:execution:"
	defaultRunTimeout  = 5 * time.Minute
)

// Job is a recurring task
type Job struct {
	Name     string
	Schedule string // standard five-field cron expression
	Run      func(ctx context.Context) error
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	// RunTimeout bounds a single execution
	RunTimeout time.Duration
	// ExecutionLockTTL is how long an execution window stays claimed
	ExecutionLockTTL time.Duration
}

// DefaultSchedulerConfig returns default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		RunTimeout:       defaultRunTimeout,
		ExecutionLockTTL: time.Hour,
	}
}

// Scheduler runs registered jobs on their cron schedules. With a Locker,
// several instances sharing a store run each window only once.
type Scheduler struct {
	cron       *cron.Cron
	locker     Locker
	logger     *zap.Logger
	config     SchedulerConfig
	instanceID string
	now        func() time.Time

	mu      sync.RWMutex
	jobs    map[string]Job
	running bool
	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewScheduler creates a new scheduler. locker may be nil for a single instance.
func NewScheduler(locker Locker, logger *zap.Logger) *Scheduler {
	return NewSchedulerWithConfig(locker, logger, DefaultSchedulerConfig())
}

// NewSchedulerWithConfig creates a new scheduler with custom configuration
func NewSchedulerWithConfig(locker Locker, logger *zap.Logger, config SchedulerConfig) *Scheduler {
	if config.RunTimeout <= 0 {
		config.RunTimeout = defaultRunTimeout
	}
	return &Scheduler{
		cron:       cron.New(),
		locker:     locker,
		logger:     logger,
		config:     config,
		instanceID: uuid.New().String(),
		now:        time.Now,
		jobs:       make(map[string]Job),
		baseCtx:    context.Background(),
	}
}

// RegisterJob validates and registers a job
func (s *Scheduler) RegisterJob(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.Name]; exists {
		return fmt.Errorf("job %s already registered", job.Name)
	}
	if job.Run == nil {
		return fmt.Errorf("job %s has no run function", job.Name)
	}
	if _, err := cron.ParseStandard(job.Schedule); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	if _, err := s.cron.AddFunc(job.Schedule, func() { s.execute(job) }); err != nil {
		return fmt.Errorf("schedule job %s: %w", job.Name, err)
	}
	s.jobs[job.Name] = job

	s.logger.Info("Registered scheduled job",
		zap.String("name", job.Name),
		zap.String("schedule", job.Schedule),
	)
	return nil
}

// Start starts the cron loop. Executions stop when ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}
	s.running = true
	s.baseCtx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()

	s.logger.Info("Starting scheduler",
		zap.String("instance_id", s.instanceID),
		zap.Int("jobs", len(s.jobs)),
	)
	return nil
}

// Stop stops the scheduler and waits for running jobs until ctx expires
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	cancel := s.cancel
	s.mu.Unlock()

	s.logger.Info("Stopping scheduler")
	cronCtx := s.cron.Stop()
	select {
	case <-cronCtx.Done():
	case <-ctx.Done():
		cancel()
		return ctx.Err()
	}
	cancel()
	return nil
}

// RunNow executes a registered job immediately, honouring the execution lock
func (s *Scheduler) RunNow(name string) error {
	s.mu.RLock()
	job, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("job %s not registered", name)
	}
	s.execute(job)
	return nil
}

// Jobs returns the names of the registered jobs
func (s *Scheduler) Jobs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

func (s *Scheduler) execute(job Job) {
	s.mu.RLock()
	base := s.baseCtx
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(base, s.config.RunTimeout)
	defer cancel()

	window := s.executionWindow()
	if s.locker != nil {
		acquired, err := s.locker.TryLock(ctx, executionKeyPrefix+job.Name+":"+window, s.instanceID, s.config.ExecutionLockTTL)
		if err != nil {
			s.logger.Error("Failed to acquire cron execution lock",
				zap.String("name", job.Name),
				zap.Error(err),
			)
			return
		}
		if !acquired {
			s.logger.Debug("Cron job already executed in this window",
				zap.String("name", job.Name),
				zap.String("window", window),
			)
			return
		}
	}

	start := s.now()
	s.logger.Info("Executing scheduled job",
		zap.String("name", job.Name),
		zap.String("execution_window", window),
	)
	if err := job.Run(ctx); err != nil {
		s.logger.Error("Scheduled job failed",
			zap.String("name", job.Name),
			zap.Duration("duration", s.now().Sub(start)),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("Scheduled job completed",
		zap.String("name", job.Name),
		zap.Duration("duration", s.now().Sub(start)),
	)
}

// executionWindow identifies the minute a run belongs to. Cron fires at
// minute granularity, so two instances firing for the same tick share it.
func (s *Scheduler) executionWindow() string {
	return s.now().UTC().Format("2006-01-02T15:04")
}
