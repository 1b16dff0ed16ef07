package requests

type ListBookings struct {
	Page        int    `validate:"min=1"`
	Limit       int    `validate:"min=1,max=100"`
	Search      string `validate:"omitempty,max=100"`
	Status      string `validate:"omitempty,booking_status"`
	ServiceType string `validate:"omitempty,service_type"`
	DateFrom    string `validate:"omitempty,datetime=2006-01-02"`
	DateTo      string `validate:"omitempty,datetime=2006-01-02"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,booking_status"`
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type CancelBooking struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
