package services

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/donapoint/donapoint/internal/models"
)

// blockingService lets tests decide when each List call settles, to
// exercise overlapping fetches deterministically.
type blockingService struct {
	mu    sync.Mutex
	calls []*listCall
	ready chan struct{}
}

type listCall struct {
	filter  models.Filter
	release chan struct{}
	points  []models.DonationPoint
	err     error
}

func newBlockingService() *blockingService {
	return &blockingService{ready: make(chan struct{}, 16)}
}

func (s *blockingService) List(ctx context.Context, filter models.Filter, loc *models.Location) ([]models.DonationPoint, error) {
	call := &listCall{filter: filter, release: make(chan struct{})}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
	s.ready <- struct{}{}

	<-call.release
	return call.points, call.err
}

func (s *blockingService) Get(ctx context.Context, id int64) (*models.DonationPoint, error) {
	return nil, nil
}

func (s *blockingService) Create(ctx context.Context, input models.PointCreate, imagePath string) (*models.DonationPoint, error) {
	return nil, nil
}

func (s *blockingService) Update(ctx context.Context, id int64, update models.PointUpdate) (*models.DonationPoint, error) {
	return nil, nil
}

func (s *blockingService) waitForCall(t *testing.T) {
	t.Helper()
	select {
	case <-s.ready:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a List call")
	}
}

func (s *blockingService) call(i int) *listCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[i]
}

type resultCollector struct {
	mu      sync.Mutex
	results []ListResult
}

func (c *resultCollector) add(r ListResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, r)
}

func (c *resultCollector) all() []ListResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ListResult, len(c.results))
	copy(out, c.results)
	return out
}

func TestLister_LastFilterWins(t *testing.T) {
	ctx := context.Background()
	svc := newBlockingService()
	collector := &resultCollector{}
	lister := NewLister(svc, testLogger(), collector.add)

	done1 := lister.Apply(ctx, models.Filter{Search: "f1"})
	svc.waitForCall(t)
	done2 := lister.Apply(ctx, models.Filter{Search: "f2"})
	svc.waitForCall(t)

	// F2 settles first, then the superseded F1.
	svc.call(1).points = []models.DonationPoint{{ID: 2, OrganizationName: "F2 result"}}
	close(svc.call(1).release)
	<-done2

	svc.call(0).points = []models.DonationPoint{{ID: 1, OrganizationName: "F1 result"}}
	close(svc.call(0).release)
	<-done1

	results := collector.all()
	require.Len(t, results, 1, "the stale F1 result must be discarded")
	require.Equal(t, "f2", results[0].Filter.Search)
	require.Equal(t, int64(2), results[0].Points[0].ID)
}

// instantService settles every fetch immediately, so overlapping goroutines
// race each other freely.
type instantService struct{}

func (instantService) List(context.Context, models.Filter, *models.Location) ([]models.DonationPoint, error) {
	return nil, nil
}
func (instantService) Get(context.Context, int64) (*models.DonationPoint, error) { return nil, nil }
func (instantService) Create(context.Context, models.PointCreate, string) (*models.DonationPoint, error) {
	return nil, nil
}
func (instantService) Update(context.Context, int64, models.PointUpdate) (*models.DonationPoint, error) {
	return nil, nil
}

func TestLister_DeliveriesNeverGoBackwards(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var seen []int
	lister := NewLister(instantService{}, testLogger(), func(r ListResult) {
		n, err := strconv.Atoi(r.Filter.Search)
		require.NoError(t, err)
		mu.Lock()
		seen = append(seen, n)
		mu.Unlock()
	})

	const applies = 400
	dones := make([]<-chan struct{}, 0, applies)
	for i := 0; i < applies; i++ {
		dones = append(dones, lister.Apply(ctx, models.Filter{Search: strconv.Itoa(i)}))
	}
	for _, d := range dones {
		<-d
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		require.Greater(t, seen[i], seen[i-1],
			"a superseded result landed after a newer one: %v", seen)
	}
	require.Equal(t, applies-1, seen[len(seen)-1], "the newest filter's result must be delivered")
}

func TestLister_EachApplyFetchesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	svc := newBlockingService()
	collector := &resultCollector{}
	lister := NewLister(svc, testLogger(), collector.add)

	done1 := lister.Apply(ctx, models.Filter{Search: "a"})
	svc.waitForCall(t)
	close(svc.call(0).release)
	<-done1

	done2 := lister.Apply(ctx, models.Filter{Search: "b"})
	svc.waitForCall(t)
	close(svc.call(1).release)
	<-done2

	svc.mu.Lock()
	n := len(svc.calls)
	svc.mu.Unlock()
	require.Equal(t, 2, n, "one fetch per filter change")
	require.Len(t, collector.all(), 2)
}

func TestLister_CurrentFetchErrorIsDelivered(t *testing.T) {
	ctx := context.Background()
	svc := newBlockingService()
	collector := &resultCollector{}
	lister := NewLister(svc, testLogger(), collector.add)

	done := lister.Apply(ctx, models.Filter{})
	svc.waitForCall(t)
	svc.call(0).err = context.DeadlineExceeded
	close(svc.call(0).release)
	<-done

	results := collector.all()
	require.Len(t, results, 1)
	require.Error(t, results[0].Err, "a current fetch's failure must reach the view")
}

func TestLister_LocationPassedToService(t *testing.T) {
	ctx := context.Background()

	var gotLoc *models.Location
	svc := &locationRecordingService{got: &gotLoc}
	lister := NewLister(svc, testLogger(), func(ListResult) {})

	lister.SetLocation(&models.Location{Lat: 10.82, Lng: 106.63})
	<-lister.Apply(ctx, models.Filter{})

	require.NotNil(t, gotLoc)
	require.Equal(t, 10.82, gotLoc.Lat)
}

type locationRecordingService struct {
	got **models.Location
}

func (s *locationRecordingService) List(ctx context.Context, filter models.Filter, loc *models.Location) ([]models.DonationPoint, error) {
	*s.got = loc
	return nil, nil
}

func (s *locationRecordingService) Get(ctx context.Context, id int64) (*models.DonationPoint, error) {
	return nil, nil
}

func (s *locationRecordingService) Create(ctx context.Context, input models.PointCreate, imagePath string) (*models.DonationPoint, error) {
	return nil, nil
}

func (s *locationRecordingService) Update(ctx context.Context, id int64, update models.PointUpdate) (*models.DonationPoint, error) {
	return nil, nil
}
