package booking

// Stats summarizes a set of bookings for the admin dashboard.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
}

// ComputeStats counts bookings by status.
func ComputeStats(bookings []*Booking) Stats {
	s := Stats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status() {
		case StatusPending:
			s.Pending++
		case StatusConfirmed:
			s.Confirmed++
		}
	}
	return s
}
