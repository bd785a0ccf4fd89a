package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/ember/internal/mocks"
)

const testSecret = "test-secret"

func newAuthFixture() (*AuthService, *mocks.UserRepoMem, *mocks.ProfileRepoMem) {
	users := mocks.NewUserRepoMem()
	users.Swipes = mocks.NewSwipeRepoMem()
	profiles := mocks.NewProfileRepoMem()
	return NewAuthService(users, profiles, testSecret), users, profiles
}

func registerInput() RegisterInput {
	return RegisterInput{
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Kovac",
		BirthDate: "1994-08-21",
		Gender:    "female",
		Password:  "Sup3rSecret",
	}
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	svc, users, profiles := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.NotEmpty(t, resp.AccessToken)

	stored, err := users.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Sup3rSecret", stored.PasswordHash)

	profile, err := profiles.GetByUserID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, profile, "registration must seed an empty profile")

	// Token subject is the new user's ID.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), sub)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterInvalidBirthDate(t *testing.T) {
	svc, _, _ := newAuthFixture()
	input := registerInput()
	input.BirthDate = "21-08-1994"

	_, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "Sup3rSecret"})
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("Sup3rSecret")
	require.NoError(t, err)

	assert.True(t, verifyPassword("Sup3rSecret", hash))
	assert.False(t, verifyPassword("sup3rsecret", hash))
	assert.False(t, verifyPassword("Sup3rSecret", "not-a-valid-hash"))
}
