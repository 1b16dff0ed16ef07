package auth

import (
	"context"
	"superadmin-service/internal/app/services/shared/mocks"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthUsecase_Login(t *testing.T) {
	t.Run("Sanitizes the email before forwarding", func(t *testing.T) {
		client := new(mocks.SuperadminClient)
		client.On("Login", mock.Anything, requests.Login{Email: "admin@example.com", Password: "secret"}).
			Return(&responses.Login{Token: "jwt"}, nil).Once()

		uc := NewAuthUsecase(client, zap.NewNop())
		login, err := uc.Login(context.Background(), &requests.Login{Email: "  Admin@Example.com ", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "jwt", login.Token)
		client.AssertExpectations(t)
	})

	t.Run("Rejects a malformed email locally", func(t *testing.T) {
		client := new(mocks.SuperadminClient)
		uc := NewAuthUsecase(client, zap.NewNop())

		_, err := uc.Login(context.Background(), &requests.Login{Email: "not-an-email", Password: "secret"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		client.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Passes upstream errors through", func(t *testing.T) {
		client := new(mocks.SuperadminClient)
		upstream := exceptions.ErrUpstreamResponse(401, constvars.SuperadminPathLogin, "Invalid credentials")
		client.On("Login", mock.Anything, mock.Anything).Return(nil, upstream).Once()

		uc := NewAuthUsecase(client, zap.NewNop())
		_, err := uc.Login(context.Background(), &requests.Login{Email: "admin@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, upstream)
	})
}
