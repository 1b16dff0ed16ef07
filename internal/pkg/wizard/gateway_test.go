package wizard

import (
	"errors"
	"testing"

	"superadmin-service/internal/pkg/dto/requests"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateOrganizationRequest(t *testing.T) {
	var draft Draft
	for _, values := range validSteps() {
		draft.Merge(values)
	}

	request, err := BuildCreateOrganizationRequest(draft)
	require.NoError(t, err)

	want := requests.CreateOrganization{
		OrganizationID: "city-care-01",
		Name:           "City Care",
		Logo:           "https://cdn.example.com/logo.png",
		Email:          "admin@citycare.com",
		Password:       "secret1",
		PhoneNumber:    "+15551234567",
		Address: requests.OrganizationAddress{
			Street:  "12 Main Street",
			City:    "Austin",
			State:   "Texas",
			Country: "USA",
			ZipCode: "73301",
		},
		MaxUsers:   25,
		MaxDoctors: 8,
	}
	if diff := cmp.Diff(want, request); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCreateOrganizationRequestNeedsEveryStep(t *testing.T) {
	var draft Draft
	for _, values := range validSteps()[:4] {
		draft.Merge(values)
	}

	_, err := BuildCreateOrganizationRequest(draft)

	assert.ErrorIs(t, err, ErrIncompleteDraft)
}

func TestSubmissionMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "server message", err: &RejectedError{Message: "email already exists"}, want: "email already exists"},
		{name: "wrapped server message", err: errors.Join(errors.New("http 409"), &RejectedError{Message: "organization id taken"}), want: "organization id taken"},
		{name: "blank server message", err: &RejectedError{Message: "  "}, want: DefaultSubmissionErrorMessage},
		{name: "transport failure", err: errors.New("dial tcp: refused"), want: DefaultSubmissionErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubmissionMessage(tt.err))
		})
	}
}

func TestDraftMergeOnlyTouchesOwnSlot(t *testing.T) {
	var draft Draft
	draft.Merge(validSteps()[0])
	draft.Merge(ContactDetails{Email: "first@citycare.com", PhoneNumber: "+15551234567"})
	draft.Merge(ContactDetails{Email: "second@citycare.com", PhoneNumber: "+15551234567"})

	assert.Equal(t, validSteps()[0], *draft.BasicInformation)
	assert.Equal(t, "second@citycare.com", draft.ContactDetails.Email)
	assert.Nil(t, draft.Address)
	assert.False(t, draft.Complete())
	assert.Equal(t, []string{FieldOrganizationID, FieldName, FieldLogo, FieldEmail, FieldPhoneNumber}, draft.Keys())
}

func TestSteps(t *testing.T) {
	steps := Steps()

	require.Len(t, steps, TotalSteps)
	seen := map[string]StepID{}
	for i, step := range steps {
		assert.Equal(t, StepID(i+1), step.ID)
		for _, field := range step.Fields {
			owner, dup := seen[field]
			assert.False(t, dup, "field %s owned by step %d and %d", field, owner, step.ID)
			seen[field] = step.ID
		}
	}
	assert.Equal(t, "Security", StepSecurity.String())

	steps[0].Fields[0] = "mutated"
	assert.Equal(t, FieldOrganizationID, Steps()[0].Fields[0])
}
