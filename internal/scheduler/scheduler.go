package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs named jobs on cron specs. A job still running when its next
// tick fires is skipped, and a panicking job is recovered.
type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	logger := cron.PrintfLogger(logrus.StandardLogger())
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
	}
}

// Add registers job under spec, e.g. "@every 5s" or "0 * * * *".
func (s *Scheduler) Add(name, spec string, job func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		job(context.Background())
	})
	if err != nil {
		logrus.WithField("job", name).Errorf("failed to schedule job: %v", err)
		return err
	}
	logrus.WithFields(logrus.Fields{"job": name, "schedule": spec}).Info("scheduled job")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and returns a context done when running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
