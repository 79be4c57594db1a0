// Package scheduler wires rule execution frequencies to timers using
// gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	assignmentusecases "academy/internal/application/assignment/usecases"
	vo "academy/internal/domain/assignment/valueobjects"
	"academy/internal/shared/biztime"
	sharedConfig "academy/internal/shared/config"
	"academy/internal/shared/logger"
)

// frequencyTriggers maps each batch frequency to its cron expression in the
// business timezone. IMMEDIATE and ON_NEW_EMPLOYEE are event triggers, not
// timers, so they have no entry here. New frequencies are added by extending
// this table.
var frequencyTriggers = map[vo.ExecutionFrequency]string{
	vo.FrequencyDaily:   "0 2 * * *",
	vo.FrequencyWeekly:  "0 3 * * 1",
	vo.FrequencyMonthly: "0 4 1 * *",
}

// Manager owns the gocron scheduler and the registered rule batch jobs.
type Manager struct {
	scheduler gocron.Scheduler
	batch     *assignmentusecases.ExecuteScheduledRulesUseCase
	cfg       *sharedConfig.SchedulerConfig
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewManager creates a Manager. Cron expressions are evaluated in the
// business timezone.
func NewManager(
	batch *assignmentusecases.ExecuteScheduledRulesUseCase,
	cfg *sharedConfig.SchedulerConfig,
	log logger.Interface,
) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		batch:     batch,
		cfg:       cfg,
		logger:    log,
	}, nil
}

// RegisterRuleJobs registers one cron job per configured frequency. An
// unknown or event-driven frequency in the configuration is rejected so a
// typo does not silently disable a batch.
func (m *Manager) RegisterRuleJobs() error {
	for _, raw := range m.cfg.Frequencies {
		frequency, err := vo.ParseFrequency(raw)
		if err != nil {
			return fmt.Errorf("scheduler frequency %q: %w", raw, err)
		}
		cronExpr, ok := frequencyTriggers[frequency]
		if !ok {
			return fmt.Errorf("frequency %s is event-driven and cannot be scheduled", frequency)
		}

		freq := frequency
		_, err = m.scheduler.NewJob(
			gocron.CronJob(cronExpr, false),
			gocron.NewTask(func() {
				m.runBatch(freq)
			}),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithTags("assignment", freq.String()),
			gocron.WithName(fmt.Sprintf("rules-%s", freq.String())),
		)
		if err != nil {
			return fmt.Errorf("failed to register %s job: %w", frequency, err)
		}

		m.logger.Infow("registered rule batch job", "frequency", frequency.String(), "cron", cronExpr)
	}
	return nil
}

func (m *Manager) runBatch(frequency vo.ExecutionFrequency) {
	timeout := time.Duration(m.cfg.JobTimeoutMinutes) * time.Minute
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := m.batch.Execute(ctx, frequency); err != nil {
		m.logger.Errorw("scheduled rule batch failed", "frequency", frequency.String(), "error", err)
	}
}

// Start begins executing registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Stop shuts the scheduler down, waiting for running jobs.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if !m.started {
		return nil
	}
	m.started = false
	return m.scheduler.Shutdown()
}
