package wizard

import (
	"context"
	"sync"
	"superadmin-service/internal/pkg/dto/requests"
)

func validSteps() []StepValues {
	return []StepValues{
		BasicInformation{OrganizationID: "city-care-01", Name: "City Care", Logo: "https://cdn.example.com/logo.png"},
		ContactDetails{Email: "admin@citycare.com", PhoneNumber: "+15551234567"},
		Address{Street: "12 Main Street", City: "Austin", State: "Texas", Country: "USA", ZipCode: "73301"},
		Capacity{MaxUsers: 25, MaxDoctors: 8},
		Security{Password: "secret1", ConfirmPassword: "secret1"},
	}
}

type fakeGateway struct {
	mu       sync.Mutex
	requests []requests.CreateOrganization
	created  *CreatedOrganization
	err      error
	entered  chan struct{}
	release  chan struct{}
}

func (g *fakeGateway) CreateOrganization(ctx context.Context, request requests.CreateOrganization) (*CreatedOrganization, error) {
	g.mu.Lock()
	g.requests = append(g.requests, request)
	created, err := g.created, g.err
	g.mu.Unlock()

	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.release != nil {
		<-g.release
	}
	return created, err
}

func (g *fakeGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func (g *fakeGateway) setResult(created *CreatedOrganization, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.created, g.err = created, err
}
