package responses

import "github.com/goccy/go-json"

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuperadminEnvelope is the body every superadmin API endpoint answers with.
// Login and profile put token and user next to data instead of inside it.
type SuperadminEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Token   string          `json:"token,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
}

// Pagination mirrors the paging block the superadmin API nests in list data.
// Each listing names its total differently.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	Total         int  `json:"total,omitempty"`
	TotalUsers    int  `json:"totalUsers,omitempty"`
	TotalDoctors  int  `json:"totalDoctors,omitempty"`
	TotalBookings int  `json:"totalBookings,omitempty"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
}

func (p Pagination) TotalItems() int {
	for _, total := range []int{p.Total, p.TotalUsers, p.TotalDoctors, p.TotalBookings} {
		if total > 0 {
			return total
		}
	}
	return 0
}
