package booking

import "time"

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	WorkerID    *string   `json:"workerId"`
	WorkerName  string    `json:"workerName"`
	ServiceID   string    `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Address     string    `json:"address"`
	Notes       string    `json:"notes"`
	Price       string    `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Assigned reports whether a worker has taken the booking.
func (b Booking) Assigned() bool {
	return b.WorkerID != nil
}

// AvailableJob is a pending unassigned booking as shown in the worker job
// feed, enriched with the requester's name and phone at read time. The
// customer fields are never stored on the booking row.
type AvailableJob struct {
	Booking
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}
