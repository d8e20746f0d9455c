package booking

import (
	"context"
	"strings"

	"github.com/fixora/fixora-backend/auth"
	"github.com/fixora/fixora-backend/metrics"
)

type BookingRepository interface {
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsForCustomer(ctx context.Context, userID string) ([]Booking, error)
	GetBookingsForWorker(ctx context.Context, workerID string) ([]Booking, error)
	GetAvailableJobs(ctx context.Context) ([]AvailableJob, error)
	AssignWorker(ctx context.Context, id, workerID, workerName string) error
	SetBookingStatus(ctx context.Context, id, from, to string) error
}

type Service struct {
	repo BookingRepository
}

func NewService(repo BookingRepository) *Service {
	return &Service{repo: repo}
}

// CreateBooking inserts a new pending, unassigned booking owned by the
// caller. The service descriptor and price come from the request body as
// copied from the catalog by the client; they are fixed for the lifetime of
// the record.
func (s *Service) CreateBooking(ctx context.Context, actor auth.Principal, booking Booking) (Booking, error) {
	required := []string{
		booking.ServiceID,
		booking.ServiceName,
		booking.Date,
		booking.Time,
		booking.Address,
		booking.Price,
	}

	for _, field := range required {
		if len(strings.TrimSpace(field)) == 0 {
			return Booking{}, ErrMissingFields
		}
	}

	booking.UserID = actor.ID

	created, err := s.repo.InsertBooking(ctx, booking)

	if err == nil {
		metrics.IncTransition("created")
	}

	return created, err
}

// ListBookings returns the caller-scoped history: a customer sees the
// bookings they requested, a worker sees the jobs assigned to them.
func (s *Service) ListBookings(ctx context.Context, actor auth.Principal) ([]Booking, error) {
	if actor.Role == auth.RoleWorker {
		return s.repo.GetBookingsForWorker(ctx, actor.ID)
	}

	return s.repo.GetBookingsForCustomer(ctx, actor.ID)
}

// AvailableJobs returns the job feed: every pending unassigned booking,
// newest first. Pure read, no side effects.
func (s *Service) AvailableJobs(ctx context.Context) ([]AvailableJob, error) {
	return s.repo.GetAvailableJobs(ctx)
}

// AcceptJob assigns the calling worker to a pending job. The repository
// write is conditional on the record still being pending and unassigned, so
// with N workers racing for the same job exactly one succeeds; the rest get
// ErrJobTaken. The worker's display name is snapshotted onto the record at
// this point and not kept in sync with later profile edits.
func (s *Service) AcceptJob(ctx context.Context, id string, actor auth.Principal) (Booking, error) {
	err := s.repo.AssignWorker(ctx, id, actor.ID, actor.Name)

	if err != nil {
		return Booking{}, err
	}

	metrics.IncTransition("accepted")

	return s.repo.GetBookingByID(ctx, id)
}

// CompleteJob marks a confirmed job done. Only the assigned worker may
// complete it, and only from Confirmed.
func (s *Service) CompleteJob(ctx context.Context, id string, actor auth.Principal) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if !booking.Assigned() || *booking.WorkerID != actor.ID {
		return Booking{}, ErrNotAllowed
	}

	if booking.Status != StatusConfirmed {
		return Booking{}, ErrInvalidBookingState
	}

	err = s.repo.SetBookingStatus(ctx, id, StatusConfirmed, StatusCompleted)

	if err != nil {
		return Booking{}, err
	}

	metrics.IncTransition("completed")

	return s.repo.GetBookingByID(ctx, id)
}

// CancelBooking lets the original requester withdraw a booking no worker has
// engaged with yet. Once confirmed the job is committed to a worker and can
// no longer be cancelled here.
func (s *Service) CancelBooking(ctx context.Context, id string, actor auth.Principal) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if booking.UserID != actor.ID {
		return Booking{}, ErrNotAllowed
	}

	if booking.Status != StatusPending {
		return Booking{}, ErrInvalidBookingState
	}

	err = s.repo.SetBookingStatus(ctx, id, StatusPending, StatusCancelled)

	if err != nil {
		return Booking{}, err
	}

	metrics.IncTransition("cancelled")

	return s.repo.GetBookingByID(ctx, id)
}
