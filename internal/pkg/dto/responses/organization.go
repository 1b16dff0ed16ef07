package responses

type OrganizationAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

type Organization struct {
	ID             string              `json:"id,omitempty"`
	MongoID        string              `json:"_id,omitempty"`
	OrganizationID string              `json:"organizationId"`
	Name           string              `json:"name"`
	Logo           string              `json:"logo,omitempty"`
	Email          string              `json:"email"`
	PhoneNumber    string              `json:"phoneNumber"`
	Address        OrganizationAddress `json:"address"`
	MaxUsers       int                 `json:"maxUsers"`
	MaxDoctors     int                 `json:"maxDoctors"`
	CurrentUsers   int                 `json:"currentUsers"`
	CurrentDoctors int                 `json:"currentDoctors"`
	IsActive       bool                `json:"isActive"`
	CreatedAt      string              `json:"createdAt,omitempty"`
}

// Identifier returns the record id under whichever key the API used.
func (o Organization) Identifier() string {
	switch {
	case o.ID != "":
		return o.ID
	case o.MongoID != "":
		return o.MongoID
	}
	return o.OrganizationID
}

type OrganizationList struct {
	Organizations []Organization `json:"organizations"`
	Pagination    Pagination     `json:"pagination"`
}
