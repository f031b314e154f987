package health

import (
	"context"
	"testing"

	"climate-api/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

type stubHealth struct {
	status model.HealthStatus
}

func (s stubHealth) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status, Details: map[string]string{}}
}

func TestCheckHealth(t *testing.T) {
	cases := []struct {
		name  string
		db    model.HealthStatus
		cache model.HealthStatus
		want  model.HealthStatus
	}{
		{"all up", model.StatusUp, model.StatusUp, model.StatusUp},
		{"cache not configured", model.StatusUp, model.StatusUnknown, model.StatusUp},
		{"cache down", model.StatusUp, model.StatusDown, model.StatusDown},
		{"store down", model.StatusDown, model.StatusUnknown, model.StatusDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewHealthUseCase(stubHealth{tc.db}, stubHealth{tc.cache})

			got := uc.CheckHealth(context.Background())

			assert.Equal(t, tc.want, got.Status)
			assert.Equal(t, tc.db, got.Database.Status)
			assert.Equal(t, tc.cache, got.Cache.Status)
		})
	}
}
