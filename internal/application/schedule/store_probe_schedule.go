package schedule

import (
	"context"
	"time"

	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/model"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StoreProbeScheduler periodically pings the store and re-checks its schema.
// It only reads, so it is safe to run on every instance.
type StoreProbeScheduler struct {
	cron          *cron.Cron
	healthGateway db.HealthDBGateway
	schemaGateway db.ClimateGateway
	timeout       time.Duration
}

func NewStoreProbeScheduler(healthGateway db.HealthDBGateway, schemaGateway db.ClimateGateway, timeout time.Duration) *StoreProbeScheduler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &StoreProbeScheduler{
		cron:          cron.New(),
		healthGateway: healthGateway,
		schemaGateway: schemaGateway,
		timeout:       timeout,
	}
}

// InitStoreProbeTasks registers the probe under spec and starts the cron runner.
// An empty spec leaves the probe disabled.
func (scheduler *StoreProbeScheduler) InitStoreProbeTasks(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := scheduler.cron.AddFunc(spec, func() { scheduler.ProbeStore(context.Background()) }); err != nil {
		return err
	}
	scheduler.cron.Start()
	return nil
}

// Stop stops the cron runner and waits for a running probe to finish.
func (scheduler *StoreProbeScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}

// ProbeStore runs one probe and reports whether the store is healthy and matches the schema.
func (scheduler *StoreProbeScheduler) ProbeStore(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, scheduler.timeout)
	defer cancel()

	log.Debug(msg.GetMessage("db.probe-start"))

	health := scheduler.healthGateway.Health(ctx)
	if health.Status != model.StatusUp {
		log.Error(msg.GetMessage("db.probe-failed", health.Details["message"]), zap.Any("details", health.Details))
		return false
	}

	if err := scheduler.schemaGateway.ValidateSchema(ctx); err != nil {
		log.Error(msg.GetMessage("db.probe-failed", err), zap.Error(err))
		return false
	}

	log.Info(msg.GetMessage("db.probe-end", health.Status))
	return true
}
