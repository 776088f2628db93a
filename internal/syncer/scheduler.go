package syncer

import (
	"context"
	stdsync "sync"

	"github.com/roylee0704/gron"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/syncer/interfaces"
)

// Scheduler drives the controller's background duties: the initial load and
// listener startup, the periodic draft cache flush, and the remote
// timestamp poll that backstops the pub/sub listener.
type Scheduler struct {
	config     *structures.Config
	logger     providers.Logger
	controller *Controller
	cron       *gron.Cron
	opsMu      stdsync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Sync.FlushInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if err := s.controller.FlushDraft(); err != nil {
			s.logger.Errorf(providers.TypeSync, "Error while flushing draft cache: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeSync, "Flushed draft cache to %s", s.config.Sync.DraftCachePath)
	})

	s.cron.AddFunc(gron.Every(s.config.Sync.PollInterval), func() {
		s.controller.CheckRemote(context.Background())
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.controller.Stop()
}

// Restore performs the startup load and attaches the remote listener. A
// listener failure is surfaced but the service still runs: the poll job
// covers change detection.
func (s *Scheduler) Restore() error {
	ctx := context.Background()
	s.controller.Load(ctx)
	return s.controller.Start(ctx)
}

// Persist flushes the draft cache one last time on shutdown.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeSync, "Persisting draft cache...")
	if err := s.controller.FlushDraft(); err != nil {
		s.logger.Errorf(providers.TypeSync, "Error while persisting draft cache: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, controller *Controller) interfaces.SchedulerInterface {
	return &Scheduler{
		config:     config,
		logger:     logger,
		controller: controller,
	}
}
