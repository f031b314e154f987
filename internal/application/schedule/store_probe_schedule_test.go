package schedule

import (
	"context"
	"errors"
	"testing"

	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

type stubHealth struct {
	status model.HealthStatus
}

func (s stubHealth) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status, Details: map[string]string{"message": string(s.status)}}
}

type stubSchema struct {
	db.ClimateGateway
	err   error
	calls int
}

func (s *stubSchema) ValidateSchema(context.Context) error {
	s.calls++
	return s.err
}

func TestProbeStore_Healthy(t *testing.T) {
	schema := &stubSchema{}
	scheduler := NewStoreProbeScheduler(stubHealth{model.StatusUp}, schema, 0)

	assert.True(t, scheduler.ProbeStore(context.Background()))
	assert.Equal(t, 1, schema.calls)
}

func TestProbeStore_StoreDown(t *testing.T) {
	schema := &stubSchema{}
	scheduler := NewStoreProbeScheduler(stubHealth{model.StatusDown}, schema, 0)

	assert.False(t, scheduler.ProbeStore(context.Background()))
	assert.Zero(t, schema.calls)
}

func TestProbeStore_SchemaMismatch(t *testing.T) {
	schema := &stubSchema{err: errors.New("column measurement.tobs not found")}
	scheduler := NewStoreProbeScheduler(stubHealth{model.StatusUp}, schema, 0)

	assert.False(t, scheduler.ProbeStore(context.Background()))
}

func TestInitStoreProbeTasks(t *testing.T) {
	scheduler := NewStoreProbeScheduler(stubHealth{model.StatusUp}, &stubSchema{}, 0)

	assert.NoError(t, scheduler.InitStoreProbeTasks(""))
	assert.Error(t, scheduler.InitStoreProbeTasks("not a cron spec"))

	assert.NoError(t, scheduler.InitStoreProbeTasks("@every 1h"))
	scheduler.Stop()
}
