package responses

type BookingUser struct {
	ID          string `json:"_id"`
	SehatID     string `json:"sehatId"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type BookingServiceDetails struct {
	PackageName     string `json:"packageName,omitempty"`
	ServiceName     string `json:"serviceName,omitempty"`
	ServiceCategory string `json:"serviceCategory,omitempty"`
}

type Booking struct {
	ID                 string                `json:"_id"`
	BookingID          string                `json:"bookingId"`
	User               BookingUser           `json:"userId"`
	ServiceType        string                `json:"serviceType"`
	ServiceDetails     BookingServiceDetails `json:"serviceDetails"`
	SlotDateTime       string                `json:"slotDateTime"`
	LocationType       string                `json:"locationType"`
	Status             string                `json:"status"`
	Amount             float64               `json:"amount"`
	CancellationReason string                `json:"cancellationReason,omitempty"`
	CreatedAt          string                `json:"createdAt,omitempty"`
}

type BookingList struct {
	Bookings   []Booking  `json:"bookings"`
	Pagination Pagination `json:"pagination"`
}
