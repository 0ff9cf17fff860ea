package scheduler

import (
	"github.com/roylee0704/gron"
	"scoreboard/internal/providers"
	"scoreboard/internal/structures"
	"sync"
)

type SchedulerInterface interface {
	Init()
	Flush() error
	Stop()
}

// Scheduler rewrites the metrics textfile on an interval while the menu is
// open, so a collector sees numbers before the session ends.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	m := s.config.Metrics
	if !m.Enabled || m.Textfile == "" || m.FlushInterval <= 0 {
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(m.FlushInterval), func() {
		_ = s.Flush()
	})
	s.cron.Start()
	s.logger.Debugf(providers.TypeApp, "Writing metrics to %s every %s", m.Textfile, m.FlushInterval)
}

func (s *Scheduler) Flush() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	err := s.metrics.Flush()
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Unable to write metrics: %s", err)
		return err
	}
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
}
