package superadmin_api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
	Body          string
}

func newTestServer(t *testing.T, status int, body string) (*Client, func() []recordedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		recorded []recordedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		mu.Lock()
		recorded = append(recorded, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get(constvars.HeaderAuthorization),
			RequestID:     r.Header.Get(constvars.HeaderXRequestID),
			Body:          string(payload),
		})
		mu.Unlock()
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	client := NewClient(config.AppSuperadmin{BaseUrl: server.URL + "/api/v1/", RequestsPerSecond: 100, Burst: 10}, zap.NewNop())
	client.HTTPClient = server.Client()
	return client, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), recorded...)
	}
}

func authedContext() context.Context {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_ACCESS_TOKEN_KEY, "token-123")
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
}

func TestClient_CreateOrganization(t *testing.T) {
	client, recorded := newTestServer(t, http.StatusCreated, `{"success":true,"message":"created","data":{"organization":{"id":"org-77","organizationId":"city-care-01","name":"City Care"}}}`)

	created, err := client.CreateOrganization(authedContext(), requests.CreateOrganization{
		OrganizationID: "city-care-01",
		Name:           "City Care",
		Email:          "admin@citycare.com",
		Password:       "secret1",
		PhoneNumber:    "+15551234567",
		Address:        requests.OrganizationAddress{Street: "12 Main Street", City: "Austin", State: "Texas", Country: "USA", ZipCode: "73301"},
		MaxUsers:       25,
		MaxDoctors:     8,
	})
	require.NoError(t, err)
	assert.Equal(t, "org-77", created.Identifier())

	require.Len(t, recorded(), 1)
	got := recorded()[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/v1/superadmin/organizations", got.Path)
	assert.Equal(t, "Bearer token-123", got.Authorization)
	assert.Equal(t, "req-1", got.RequestID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got.Body), &body))
	assert.NotContains(t, body, "logo")
	assert.Equal(t, float64(25), body["maxUsers"])
}

func TestClient_ListOrganizations(t *testing.T) {
	client, recorded := newTestServer(t, http.StatusOK, `{"success":true,"data":{"organizations":[{"id":"o1","organizationId":"a-1","name":"A","isActive":true}],"pagination":{"currentPage":2,"totalPages":3,"total":21,"hasNextPage":true,"hasPrevPage":true}}}`)

	list, err := client.ListOrganizations(authedContext(), requests.ListOrganizations{Page: 2, Limit: 10, Search: "care"})
	require.NoError(t, err)
	require.Len(t, list.Organizations, 1)
	assert.Equal(t, "o1", list.Organizations[0].Identifier())
	assert.Equal(t, 21, list.Pagination.TotalItems())
	assert.Equal(t, "limit=10&page=2&search=care", recorded()[0].Query)
}

func TestClient_Login(t *testing.T) {
	client, recorded := newTestServer(t, http.StatusOK, `{"success":true,"token":"jwt-abc","user":{"email":"root@example.com"}}`)

	login, err := client.Login(context.Background(), requests.Login{Email: "root@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", login.Token)
	assert.JSONEq(t, `{"email":"root@example.com"}`, string(login.User))
	assert.Empty(t, recorded()[0].Authorization)
}

func TestClient_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		clientMessage string
		serverMessage string
	}{
		{"message is kept verbatim", http.StatusConflict, `{"success":false,"message":"email already exists"}`, "email already exists", "email already exists"},
		{"unauthorized ends the session", http.StatusUnauthorized, `{"message":"jwt expired"}`, constvars.ErrClientNotLoggedIn, "jwt expired"},
		{"not found without message", http.StatusNotFound, ``, constvars.ErrClientResourceNotFound, ""},
		{"error field fallback", http.StatusBadRequest, `{"error":"bad payload"}`, "bad payload", "bad payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, tt.status, tt.body)

			_, err := client.GetOrganization(authedContext(), "o1")
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, tt.status, customErr.StatusCode)
			assert.Equal(t, tt.clientMessage, customErr.ClientMessage)
			assert.Equal(t, tt.serverMessage, customErr.ServerMessage)
		})
	}
}

func TestClient_DeleteWithEmptyBody(t *testing.T) {
	client, recorded := newTestServer(t, http.StatusNoContent, ``)

	require.NoError(t, client.DeleteBooking(authedContext(), "b/1"))
	assert.Equal(t, http.MethodDelete, recorded()[0].Method)
	assert.Equal(t, "/api/v1/superadmin/bookings/b/1", recorded()[0].Path)
}

func TestClient_BookingMutations(t *testing.T) {
	client, recorded := newTestServer(t, http.StatusOK, `{"success":true,"data":{"_id":"b1","bookingId":"BK-1","status":"cancelled","cancellationReason":"no show"}}`)

	booking, err := client.CancelBooking(authedContext(), "b1", requests.CancelBooking{Reason: "no show"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", booking.Status)

	_, err = client.UpdateBookingStatus(authedContext(), "b1", requests.UpdateBookingStatus{Status: "confirmed"})
	require.NoError(t, err)

	want := []recordedRequest{
		{Method: http.MethodPatch, Path: "/api/v1/superadmin/bookings/b1/cancel", Authorization: "Bearer token-123", RequestID: "req-1", Body: `{"reason":"no show"}`},
		{Method: http.MethodPatch, Path: "/api/v1/superadmin/bookings/b1/status", Authorization: "Bearer token-123", RequestID: "req-1", Body: `{"status":"confirmed"}`},
	}
	if diff := cmp.Diff(want, recorded()); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_SearchDoctorsQuery(t *testing.T) {
	client, recorded := newTestServer(t, http.StatusOK, `{"success":true,"data":{"doctors":[]}}`)

	minimum, maximum := 3, 10
	data, err := client.SearchDoctors(authedContext(), requests.SearchDoctors{
		Page:           1,
		Limit:          20,
		Specialization: "cardiology",
		ExperienceMin:  &minimum,
		ExperienceMax:  &maximum,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"doctors":[]}`, string(data))
	assert.Equal(t, "/api/v1/superadmin/doctors/search", recorded()[0].Path)
	assert.Equal(t, "experienceMax=10&experienceMin=3&limit=20&page=1&specialization=cardiology", recorded()[0].Query)
}

func TestClient_ListCMSContents(t *testing.T) {
	t.Run("array data", func(t *testing.T) {
		client, recorded := newTestServer(t, http.StatusOK, `{"success":true,"data":[{"_id":"c1","contentType":"dashboard_offers","content":[{"title":"x"}],"isActive":true}]}`)

		active := true
		contents, err := client.ListCMSContents(authedContext(), requests.ListCMSContents{ContentType: "dashboard_offers", IsActive: &active})
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.JSONEq(t, `[{"title":"x"}]`, string(contents[0].Content))
		assert.Equal(t, "contentType=dashboard_offers&isActive=true", recorded()[0].Query)
	})

	t.Run("missing data is an empty list", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusOK, `{"success":true}`)

		contents, err := client.ListCMSContents(authedContext(), requests.ListCMSContents{})
		require.NoError(t, err)
		assert.NotNil(t, contents)
		assert.Empty(t, contents)
	})
}

func TestClient_MalformedBody(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, `{"success":true,"data":`)

	_, err := client.GetOverview(authedContext())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}

func TestClient_Throttled(t *testing.T) {
	client, recorded := newTestServer(t, http.StatusOK, `{"success":true}`)
	client.Limiter = rate.NewLimiter(rate.Limit(0.001), 1)
	require.True(t, client.Limiter.Allow())

	ctx, cancel := context.WithCancel(authedContext())
	cancel()

	_, err := client.GetStats(ctx)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	assert.Empty(t, recorded())
}

func TestDecodeRecord(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		org, err := decodeRecord[struct {
			Name string `json:"name"`
		}]([]byte(`{"organization":{"name":"A"}}`), "organization", "organization")
		require.NoError(t, err)
		assert.Equal(t, "A", org.Name)
	})

	t.Run("plain", func(t *testing.T) {
		org, err := decodeRecord[struct {
			Name string `json:"name"`
		}]([]byte(`{"name":"B"}`), "organization", "organization")
		require.NoError(t, err)
		assert.Equal(t, "B", org.Name)
	})

	t.Run("null", func(t *testing.T) {
		org, err := decodeRecord[struct {
			Name string `json:"name"`
		}]([]byte(`null`), "organization", "organization")
		require.NoError(t, err)
		assert.Empty(t, org.Name)
	})
}
