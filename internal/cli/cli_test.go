package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/app/services/shared/mocks"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedPrompter answers prompts from a fixed script. An empty answer
// takes the prompt's default.
type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (p *scriptedPrompter) next(message string) (string, error) {
	p.asked = append(p.asked, message)
	if len(p.answers) == 0 {
		return "", fmt.Errorf("no scripted answer for %q", message)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	answer, err := p.next(message)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = defaultValue
	}
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *scriptedPrompter) Password(message string) (string, error) {
	return p.next(message)
}

func (p *scriptedPrompter) Select(message string, options []string, defaultOption string) (string, error) {
	answer, err := p.next(message)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultOption, nil
	}
	for _, option := range options {
		if option == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("%q is not one of %v", answer, options)
}

func (p *scriptedPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	answer, err := p.next(message)
	if err != nil {
		return false, err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(answer)
}

type cliFixture struct {
	app    *App
	client *mocks.SuperadminClient
	prompt *scriptedPrompter
	out    *bytes.Buffer
}

func newCLIFixture(t *testing.T, answers ...string) *cliFixture {
	t.Helper()
	store, err := NewConfigStore(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	f := &cliFixture{
		client: new(mocks.SuperadminClient),
		prompt: &scriptedPrompter{answers: answers},
		out:    new(bytes.Buffer),
	}
	f.app = NewApp(store, f.prompt, f.out, zap.NewNop())
	f.app.NewClient = func(Config) contracts.SuperadminClient { return f.client }
	return f
}

func (f *cliFixture) loggedIn(t *testing.T) *cliFixture {
	t.Helper()
	require.NoError(t, f.app.Config.SaveSession("admin@example.com", "tok-1"))
	return f
}

func (f *cliFixture) run(args ...string) error {
	root := NewRootCommand(f.app)
	root.SetArgs(args)
	root.SetErr(f.out)
	return root.ExecuteContext(context.Background())
}

func withToken(token string) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Value(constvars.CONTEXT_ACCESS_TOKEN_KEY) == token
	})
}

func TestLoginAndLogout(t *testing.T) {
	f := newCLIFixture(t, "hunter2")
	f.client.On("Login", mock.Anything, requests.Login{Email: "admin@example.com", Password: "hunter2"}).
		Return(&responses.Login{Token: "tok-1"}, nil).Once()

	require.NoError(t, f.run("login", "--email", " Admin@Example.com "))

	cfg, err := f.app.Config.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", cfg.Token)
	assert.Equal(t, "admin@example.com", cfg.Email)
	assert.Contains(t, f.out.String(), "Logged in as admin@example.com")

	reopened, err := NewConfigStore(f.app.Config.Path())
	require.NoError(t, err)
	cfg, err = reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", cfg.Token)

	require.NoError(t, f.run("logout"))
	cfg, err = f.app.Config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Token)
	f.client.AssertExpectations(t)
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	f := newCLIFixture(t, "hunter2")

	err := f.run("login", "--email", "not-an-email")

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	f.client.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestCommandsRequireLogin(t *testing.T) {
	f := newCLIFixture(t)

	assert.ErrorIs(t, f.run("organizations", "list"), ErrNotLoggedIn)
	assert.ErrorIs(t, f.run("bookings", "list"), ErrNotLoggedIn)
}

func TestOrganizationsList(t *testing.T) {
	f := newCLIFixture(t).loggedIn(t)
	f.client.On("ListOrganizations", withToken("tok-1"), requests.ListOrganizations{Page: 2, Limit: 5, Status: "active"}).
		Return(&responses.OrganizationList{
			Organizations: []responses.Organization{
				{ID: "org-1", Name: "Acme Health", Email: "ops@acme.test", MaxUsers: 10, CurrentUsers: 3, MaxDoctors: 5, IsActive: true},
			},
			Pagination: responses.Pagination{CurrentPage: 2, TotalPages: 4, Total: 16},
		}, nil).Once()

	require.NoError(t, f.run("orgs", "list", "--page", "2", "--limit", "5", "--status", "active"))

	out := f.out.String()
	assert.Contains(t, out, "Acme Health")
	assert.Contains(t, out, "3/10")
	assert.Contains(t, out, "page 2 of 4, 16 total")
	f.client.AssertExpectations(t)
}

func TestOrganizationsListValidatesFlags(t *testing.T) {
	f := newCLIFixture(t).loggedIn(t)

	err := f.run("organizations", "list", "--limit", "500")

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	f.client.AssertNotCalled(t, "ListOrganizations", mock.Anything, mock.Anything)
}

func TestOrganizationsDeleteNeedsConfirmation(t *testing.T) {
	f := newCLIFixture(t, "false").loggedIn(t)

	require.NoError(t, f.run("organizations", "delete", "org-1"))
	assert.Contains(t, f.out.String(), "Nothing deleted")
	f.client.AssertNotCalled(t, "DeleteOrganization", mock.Anything, mock.Anything)

	f.client.On("DeleteOrganization", withToken("tok-1"), "org-1").Return(nil).Once()
	require.NoError(t, f.run("organizations", "delete", "org-1", "--yes"))
	f.client.AssertExpectations(t)
}

// wizardAnswers fills every step with valid values and submits.
func wizardAnswers() []string {
	return []string{
		"acme-health", "Acme Health", "", "",
		"ops@acme.test", "+15551234567", "",
		"12 Main Street", "Springfield", "Illinois", "USA", "62701", "",
		"", "", "",
		"secret1", "secret1", "",
	}
}

func TestOrganizationsCreateWizard(t *testing.T) {
	f := newCLIFixture(t, wizardAnswers()...).loggedIn(t)
	f.client.On("CreateOrganization", withToken("tok-1"), mock.MatchedBy(func(r requests.CreateOrganization) bool {
		return r.OrganizationID == "acme-health" &&
			r.Email == "ops@acme.test" &&
			r.Address.City == "Springfield" &&
			r.MaxUsers == 10 && r.MaxDoctors == 5 &&
			r.Password == "secret1"
	})).Return(&responses.Organization{ID: "org-1"}, nil).Once()

	require.NoError(t, f.run("organizations", "create"))

	out := f.out.String()
	assert.Contains(t, out, "Step 1 of 5: Basic Information")
	assert.Contains(t, out, "Step 5 of 5: Security")
	assert.Contains(t, out, "Organization created (id org-1)")
	assert.Empty(t, f.prompt.answers)
	f.client.AssertExpectations(t)
}

func TestOrganizationsCreateWizardReportsFieldErrors(t *testing.T) {
	f := newCLIFixture(t,
		"Acme Health!", "Acme Health", "", "",
		"acme-health", "", "", "",
		"", "", "Cancel", "true",
	).loggedIn(t)

	require.NoError(t, f.run("organizations", "create"))

	out := f.out.String()
	assert.Contains(t, out, "Organization ID can only contain lowercase letters, numbers, and hyphens")
	assert.Contains(t, out, "Step 2 of 5: Contact Details")
	assert.Contains(t, out, cancelledMessage)
	assert.Empty(t, f.prompt.answers)
	f.client.AssertNotCalled(t, "CreateOrganization", mock.Anything, mock.Anything)
}

func TestOrganizationsCreateWizardRetriesFailedSubmission(t *testing.T) {
	answers := append(wizardAnswers(), "Retry")
	f := newCLIFixture(t, answers...).loggedIn(t)
	f.client.On("CreateOrganization", mock.Anything, mock.Anything).
		Return(nil, &exceptions.CustomError{StatusCode: constvars.StatusConflict, ServerMessage: "Organization ID already exists"}).Once()
	f.client.On("CreateOrganization", mock.Anything, mock.Anything).
		Return(&responses.Organization{ID: "org-2"}, nil).Once()

	require.NoError(t, f.run("organizations", "create"))

	out := f.out.String()
	assert.Contains(t, out, "Organization ID already exists")
	assert.Contains(t, out, "Organization created (id org-2)")
	f.client.AssertNumberOfCalls(t, "CreateOrganization", 2)
}

func TestOrganizationsCreateWizardBackKeepsValues(t *testing.T) {
	f := newCLIFixture(t,
		"acme-health", "Acme Health", "", "",
		"ops@acme.test", "+15551234567", "Back",
		"", "", "", "",
		"", "", "Cancel", "true",
	).loggedIn(t)

	require.NoError(t, f.run("organizations", "create"))

	assert.Equal(t, 2, strings.Count(f.out.String(), "Step 2 of 5"))
	assert.Equal(t, 2, strings.Count(f.out.String(), "Step 1 of 5"))
	assert.Empty(t, f.prompt.answers)
}

func TestBookingsCommands(t *testing.T) {
	f := newCLIFixture(t).loggedIn(t)
	f.client.On("UpdateBookingStatus", withToken("tok-1"), "bk-1", requests.UpdateBookingStatus{Status: "confirmed"}).
		Return(&responses.Booking{BookingID: "B-100", Status: "confirmed"}, nil).Once()
	f.client.On("CancelBooking", withToken("tok-1"), "bk-1", requests.CancelBooking{Reason: "duplicate"}).
		Return(&responses.Booking{BookingID: "B-100", Status: "cancelled"}, nil).Once()

	require.NoError(t, f.run("bookings", "status", "bk-1", "--status", "confirmed"))
	require.NoError(t, f.run("bookings", "cancel", "bk-1", "--reason", "duplicate"))

	assert.Contains(t, f.out.String(), "Booking B-100 is now confirmed")
	assert.Contains(t, f.out.String(), "Booking B-100 cancelled")
	f.client.AssertExpectations(t)
}

func TestBookingsStatusRejectsUnknownStatus(t *testing.T) {
	f := newCLIFixture(t).loggedIn(t)

	err := f.run("bookings", "status", "bk-1", "--status", "lost")

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	f.client.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCMSImportCreatesMissingSection(t *testing.T) {
	file := writeFile(t, "offers.yaml", "- title: Spring offer\n  discount: 20\n")
	f := newCLIFixture(t).loggedIn(t)
	f.client.On("ListCMSContents", withToken("tok-1"), requests.ListCMSContents{ContentType: "dashboard_offers"}).
		Return([]responses.CMSContent{}, nil).Once()
	f.client.On("CreateCMSContent", withToken("tok-1"), mock.MatchedBy(func(r requests.CreateCMSContent) bool {
		var items []map[string]interface{}
		if err := json.Unmarshal(r.Content, &items); err != nil {
			return false
		}
		return r.ContentType == "dashboard_offers" && r.IsActive != nil && *r.IsActive &&
			len(items) == 1 && items[0]["title"] == "Spring offer"
	})).Return(&responses.CMSContent{ID: "cms-1"}, nil).Once()

	require.NoError(t, f.run("cms", "import", "--type", "dashboard_offers", "--file", file))

	assert.Contains(t, f.out.String(), "Created dashboard_offers")
	f.client.AssertExpectations(t)
}

func TestCMSImportUpdatesExistingSection(t *testing.T) {
	file := writeFile(t, "offers.json", `[{"title":"Spring offer","discount":20}]`)
	f := newCLIFixture(t).loggedIn(t)
	f.client.On("ListCMSContents", mock.Anything, requests.ListCMSContents{ContentType: "dashboard_offers"}).
		Return([]responses.CMSContent{{ID: "cms-1", ContentType: "dashboard_offers"}}, nil).Once()
	f.client.On("UpdateCMSContent", mock.Anything, "cms-1", mock.MatchedBy(func(r requests.UpdateCMSContent) bool {
		var items []map[string]interface{}
		if err := json.Unmarshal(r.Content, &items); err != nil {
			return false
		}
		return len(items) == 1 && items[0]["discount"] == float64(20)
	})).Return(&responses.CMSContent{ID: "cms-1"}, nil).Once()

	require.NoError(t, f.run("cms", "import", "--type", "dashboard_offers", "--file", file))

	assert.Contains(t, f.out.String(), "Updated dashboard_offers")
	f.client.AssertNotCalled(t, "CreateCMSContent", mock.Anything, mock.Anything)
	f.client.AssertExpectations(t)
}

func TestCMSImportRejectsBadInput(t *testing.T) {
	t.Run("content is not an array", func(t *testing.T) {
		f := newCLIFixture(t).loggedIn(t)
		file := writeFile(t, "offers.yml", "title: Spring offer\n")

		err := f.run("cms", "import", "--type", "dashboard_offers", "--file", file)

		assert.ErrorIs(t, err, utils.ErrContentNotArray)
		f.client.AssertNotCalled(t, "ListCMSContents", mock.Anything, mock.Anything)
	})

	t.Run("unknown content type", func(t *testing.T) {
		f := newCLIFixture(t).loggedIn(t)
		file := writeFile(t, "offers.json", `[]`)

		err := f.run("cms", "import", "--type", "homepage", "--file", file)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		f.client.AssertNotCalled(t, "ListCMSContents", mock.Anything, mock.Anything)
	})
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "Organization ID already exists", describeError(&exceptions.CustomError{ClientMessage: "conflict", ServerMessage: "Organization ID already exists"}))
	assert.Equal(t, "conflict", describeError(&exceptions.CustomError{ClientMessage: "conflict"}))
	assert.Equal(t, "boom", describeError(errors.New("boom")))
}
