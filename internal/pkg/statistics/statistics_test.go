package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	leads, today, quotes int64
	calls                int
	err                  error
}

func (f *fakeCounter) CountLeads() (int64, error) {
	f.calls++
	return f.leads, f.err
}

func (f *fakeCounter) CountLeadsSince(time.Time) (int64, error) {
	f.calls++
	return f.today, f.err
}

func (f *fakeCounter) CountQuotes() (int64, error) {
	f.calls++
	return f.quotes, f.err
}

func TestGetCountsAndCaches(t *testing.T) {
	counter := &fakeCounter{leads: 12, today: 3, quotes: 40}
	store := NewMemoryStore()
	svc := NewServiceWithStore(counter, store)

	data := svc.Get(context.Background())
	assert.Equal(t, Data{TotalLeads: 12, TodayLeads: 3, TotalQuotes: 40}, data)
	cached, err := store.Get(context.Background(), CacheKeyLeadsTotal)
	require.NoError(t, err)
	assert.Equal(t, "12", cached)

	calls := counter.calls
	counter.leads = 99
	data = svc.Get(context.Background())
	assert.Equal(t, int64(12), data.TotalLeads)
	assert.Equal(t, calls, counter.calls)
}

func TestInvalidateForcesRecount(t *testing.T) {
	counter := &fakeCounter{leads: 1}
	svc := NewServiceWithStore(counter, NewMemoryStore())
	svc.Get(context.Background())

	counter.leads = 2
	svc.Invalidate()

	assert.Equal(t, int64(2), svc.Get(context.Background()).TotalLeads)
}

func TestUpdateWrapsCounterErrors(t *testing.T) {
	svc := NewServiceWithStore(&fakeCounter{err: errors.New("db down")}, NewMemoryStore())

	err := svc.Update(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count leads")
	assert.Equal(t, Data{}, svc.Get(context.Background()))
}
