package navstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"FundLens/internal/model"
)

// MemorySource serves series held in memory.
type MemorySource struct {
	mu       sync.RWMutex
	series   map[string]model.PriceSeries
	profiles map[string]model.FundProfile
}

func NewMemorySource() *MemorySource {
	return &MemorySource{
		series:   make(map[string]model.PriceSeries),
		profiles: make(map[string]model.FundProfile),
	}
}

// PutSeries stores points for code, sorted and deduplicated.
func (m *MemorySource) PutSeries(code string, points []model.NavPoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.series[code] = model.NewPriceSeries(code, points)
}

func (m *MemorySource) PutProfile(p model.FundProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.Code] = p
}

func (m *MemorySource) LoadSeries(ctx context.Context, code string, from, to time.Time) (model.PriceSeries, error) {
	if err := ctx.Err(); err != nil {
		return model.PriceSeries{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.series[code]
	if !ok || s.Len() == 0 {
		return model.PriceSeries{}, fmt.Errorf("%w: %s", ErrFundNotFound, code)
	}
	out := make([]model.NavPoint, 0, s.Len())
	for _, p := range s.Points {
		if inRange(p.Date, from, to) {
			out = append(out, p)
		}
	}
	return model.PriceSeries{FundCode: code, Points: out}, nil
}

func (m *MemorySource) LoadProfile(ctx context.Context, code string) (*model.FundProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFundNotFound, code)
	}
	return &p, nil
}

func (m *MemorySource) Close() error { return nil }
