package booking_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fixora/fixora-backend/auth"
	bk "github.com/fixora/fixora-backend/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo implements BookingRepository with a mutex guarding every
// read-check-write, giving the same atomicity as the conditional UPDATEs in
// the Postgres repository. Lifecycle tests run the whole state machine
// against it without a database.
type memoryRepo struct {
	mu       sync.Mutex
	bookings map[string]bk.Booking
	users    map[string]auth.Principal
	nextID   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		bookings: make(map[string]bk.Booking),
		users:    make(map[string]auth.Principal),
	}
}

func (r *memoryRepo) InsertBooking(_ context.Context, booking bk.Booking) (bk.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	booking.ID = fmt.Sprintf("b%d", r.nextID)
	booking.Status = bk.StatusPending
	booking.WorkerID = nil
	booking.WorkerName = ""
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.bookings[booking.ID] = booking

	return booking, nil
}

func (r *memoryRepo) GetBookingByID(_ context.Context, id string) (bk.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return bk.Booking{}, bk.ErrBookingNotFound
	}
	return booking, nil
}

func (r *memoryRepo) GetBookingsForCustomer(_ context.Context, userID string) ([]bk.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []bk.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *memoryRepo) GetBookingsForWorker(_ context.Context, workerID string) ([]bk.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []bk.Booking
	for _, b := range r.bookings {
		if b.WorkerID != nil && *b.WorkerID == workerID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *memoryRepo) GetAvailableJobs(_ context.Context) ([]bk.AvailableJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []bk.AvailableJob
	for _, b := range r.bookings {
		if b.Status == bk.StatusPending && b.WorkerID == nil {
			requester := r.users[b.UserID]
			jobs = append(jobs, bk.AvailableJob{
				Booking:       b,
				CustomerName:  requester.Name,
				CustomerPhone: requester.Phone,
			})
		}
	}
	return jobs, nil
}

func (r *memoryRepo) AssignWorker(_ context.Context, id, workerID, workerName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return bk.ErrBookingNotFound
	}
	if booking.Status != bk.StatusPending || booking.WorkerID != nil {
		return bk.ErrJobTaken
	}

	booking.WorkerID = &workerID
	booking.WorkerName = workerName
	booking.Status = bk.StatusConfirmed
	booking.UpdatedAt = time.Now()
	r.bookings[id] = booking

	return nil
}

func (r *memoryRepo) SetBookingStatus(_ context.Context, id, from, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return bk.ErrBookingNotFound
	}
	if booking.Status != from {
		return bk.ErrInvalidBookingState
	}

	booking.Status = to
	booking.UpdatedAt = time.Now()
	r.bookings[id] = booking

	return nil
}

func TestConcurrentAccept(t *testing.T) {
	repo := newMemoryRepo()
	service := bk.NewService(repo)
	ctx := context.Background()

	created, err := service.CreateBooking(ctx, customer, newBooking())
	require.Nil(t, err)

	const numWorkers = 25
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	results := make(chan error, numWorkers)

	for i := 0; i < numWorkers; i++ {
		go func(id int) {
			defer wg.Done()
			racer := auth.Principal{
				ID:   fmt.Sprintf("worker-%d", id),
				Name: fmt.Sprintf("Worker %d", id),
				Role: auth.RoleWorker,
			}
			_, aErr := service.AcceptJob(ctx, created.ID, racer)
			results <- aErr
		}(i)
	}

	wg.Wait()
	close(results)

	successCount := 0
	takenCount := 0
	for err := range results {
		switch {
		case err == nil:
			successCount++
		case err == bk.ErrJobTaken:
			takenCount++
		default:
			t.Fatalf("unexpected accept error: %v", err)
		}
	}

	assert.Equal(t, 1, successCount, "exactly one worker should win the job")
	assert.Equal(t, numWorkers-1, takenCount, "all other workers should lose the race")

	// The record must carry exactly the winner's assignment.
	booking, err := repo.GetBookingByID(ctx, created.ID)
	require.Nil(t, err)
	assert.Equal(t, bk.StatusConfirmed, booking.Status)
	assert.NotNil(t, booking.WorkerID)

	// The job must be gone from the feed.
	jobs, err := service.AvailableJobs(ctx)
	require.Nil(t, err)
	assert.Empty(t, jobs)
}

func TestLifecycleAcceptCompleteThenCancelFails(t *testing.T) {
	repo := newMemoryRepo()
	service := bk.NewService(repo)
	ctx := context.Background()

	created, err := service.CreateBooking(ctx, customer, newBooking())
	require.Nil(t, err)
	require.Equal(t, bk.StatusPending, created.Status)

	confirmed, err := service.AcceptJob(ctx, created.ID, worker)
	require.Nil(t, err)
	require.Equal(t, bk.StatusConfirmed, confirmed.Status)
	require.Equal(t, worker.ID, *confirmed.WorkerID)

	// A second worker arriving after the fact is turned away.
	secondWorker := auth.Principal{ID: "worker-2", Name: "Walt", Role: auth.RoleWorker}
	_, err = service.AcceptJob(ctx, created.ID, secondWorker)
	require.ErrorIs(t, err, bk.ErrJobTaken)

	completed, err := service.CompleteJob(ctx, created.ID, worker)
	require.Nil(t, err)
	require.Equal(t, bk.StatusCompleted, completed.Status)

	// Completed is terminal: the requester can no longer cancel.
	_, err = service.CancelBooking(ctx, created.ID, customer)
	require.ErrorIs(t, err, bk.ErrInvalidBookingState)
}

func TestLifecycleCancelThenAcceptFails(t *testing.T) {
	repo := newMemoryRepo()
	service := bk.NewService(repo)
	ctx := context.Background()

	created, err := service.CreateBooking(ctx, customer, newBooking())
	require.Nil(t, err)

	cancelled, err := service.CancelBooking(ctx, created.ID, customer)
	require.Nil(t, err)
	require.Equal(t, bk.StatusCancelled, cancelled.Status)
	require.Nil(t, cancelled.WorkerID)

	_, err = service.AcceptJob(ctx, created.ID, worker)
	require.ErrorIs(t, err, bk.ErrJobTaken)
}

func TestListScopingNeverLeaksAcrossUsers(t *testing.T) {
	repo := newMemoryRepo()
	service := bk.NewService(repo)
	ctx := context.Background()

	otherCustomer := auth.Principal{ID: "customer-2", Name: "Vik", Role: auth.RoleCustomer}

	mine, err := service.CreateBooking(ctx, customer, newBooking())
	require.Nil(t, err)

	_, err = service.CreateBooking(ctx, otherCustomer, newBooking())
	require.Nil(t, err)

	bookings, err := service.ListBookings(ctx, customer)
	require.Nil(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, mine.ID, bookings[0].ID)

	// A worker with no assignments sees nothing, even with pending jobs around.
	bookings, err = service.ListBookings(ctx, worker)
	require.Nil(t, err)
	assert.Empty(t, bookings)

	// Invariant check across every stored record.
	for _, id := range []string{"b1", "b2"} {
		b, err := repo.GetBookingByID(ctx, id)
		require.Nil(t, err)
		assigned := b.Status == bk.StatusConfirmed || b.Status == bk.StatusCompleted
		assert.Equal(t, assigned, b.WorkerID != nil)
	}
}
