package authenticating

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/mocks"
	"github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/posclient"
	"github.com/mgeorge47/canteen-console-api/internal/config"
	"github.com/mgeorge47/canteen-console-api/internal/session"
)

func testConfig() *config.Config {
	return &config.Config{
		Session: config.Session{
			Secret: "test-secret",
			TTL:    time.Hour,
		},
	}
}

func TestService_Login_CachesCredentialAndIssuesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantCredential := base64.StdEncoding.EncodeToString([]byte("admin:secret"))

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().CheckCredential(gomock.Any(), wantCredential).Return(nil)

	store := session.NewMemoryStore(time.Hour)
	service := NewService(testConfig(), mockClient, store)

	token, err := service.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := service.Resolve(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, wantCredential, sess.Credential)
}

func TestService_Login_RejectedCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		CheckCredential(gomock.Any(), gomock.Any()).
		Return(&posclient.RequestError{StatusCode: 401, Body: "bad credentials"})

	service := NewService(testConfig(), mockClient, session.NewMemoryStore(time.Hour))

	_, err := service.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UpstreamFailureIsNotInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		CheckCredential(gomock.Any(), gomock.Any()).
		Return(&posclient.RequestError{StatusCode: 503, Body: "down"})

	service := NewService(testConfig(), mockClient, session.NewMemoryStore(time.Hour))

	_, err := service.Login(context.Background(), "admin", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Resolve_GarbageToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(testConfig(), mocks.NewMockClient(ctrl), session.NewMemoryStore(time.Hour))

	_, err := service.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Resolve_TokenSignedWithDifferentSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().CheckCredential(gomock.Any(), gomock.Any()).Return(nil)

	store := session.NewMemoryStore(time.Hour)
	issuer := NewService(testConfig(), mockClient, store)

	token, err := issuer.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.Session.Secret = "different-secret"
	verifier := NewService(otherCfg, mockClient, store)

	_, err = verifier.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Logout_RemovesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().CheckCredential(gomock.Any(), gomock.Any()).Return(nil)

	store := session.NewMemoryStore(time.Hour)
	service := NewService(testConfig(), mockClient, store)

	token, err := service.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))

	_, err = service.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Logging out twice is harmless.
	assert.NoError(t, service.Logout(context.Background(), token))
}
