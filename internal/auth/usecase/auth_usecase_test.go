package usecase

import (
	"testing"
	"time"

	authdomain "task-manager-api/internal/auth/domain"
	authdto "task-manager-api/internal/auth/dto"
	"task-manager-api/internal/auth/repository"
	taskdomain "task-manager-api/internal/task/domain"
	taskrepo "task-manager-api/internal/task/repository"
	"task-manager-api/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestEnv(t *testing.T) (AuthUsecase, repository.UserRepository, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &authdomain.AuthToken{}, &taskdomain.Task{}))

	userRepo := repository.NewUserRepository(db)
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	return NewAuthUsecase(userRepo, cfg), userRepo, db
}

func signupFixture(t *testing.T, uc AuthUsecase) *authdto.AuthResponse {
	resp, err := uc.Signup(&authdto.SignupRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return resp
}

func TestSignupHashesPasswordAndIssuesToken(t *testing.T) {
	uc, _, _ := newTestEnv(t)

	resp := signupFixture(t, uc)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.NotEqual(t, "secret123", resp.User.Password)
	assert.True(t, repository.CheckPasswordHash("secret123", resp.User.Password))
}

func TestSignupNormalizesEmail(t *testing.T) {
	uc, _, _ := newTestEnv(t)

	resp, err := uc.Signup(&authdto.SignupRequest{
		Name:     "B",
		Email:    "  B@Example.COM ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", resp.User.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestEnv(t)
	signupFixture(t, uc)

	_, err := uc.Signup(&authdto.SignupRequest{
		Name:     "A again",
		Email:    "A@X.com",
		Password: "another123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupWeakPassword(t *testing.T) {
	uc, _, _ := newTestEnv(t)

	for _, pw := range []string{"short", "myPassword1", "PASSWORD99"} {
		_, err := uc.Signup(&authdto.SignupRequest{Name: "A", Email: "a@x.com", Password: pw})
		assert.ErrorIs(t, err, ErrWeakPassword, pw)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc, _, _ := newTestEnv(t)
	signupFixture(t, uc)

	_, errWrongPassword := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "wrong1234"})
	_, errUnknownEmail := uc.Login(&authdto.LoginRequest{Email: "nobody@x.com", Password: "secret123"})

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestValidateToken(t *testing.T) {
	uc, _, _ := newTestEnv(t)
	resp := signupFixture(t, uc)

	user, err := uc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = uc.ValidateToken(resp.Token + "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = uc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesExactlyThePresentedToken(t *testing.T) {
	uc, _, _ := newTestEnv(t)
	first := signupFixture(t, uc)

	second, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(first.Token))

	_, err = uc.ValidateToken(first.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The other session keeps working.
	_, err = uc.ValidateToken(second.Token)
	assert.NoError(t, err)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	uc, _, _ := newTestEnv(t)
	first := signupFixture(t, uc)

	second, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, uc.LogoutAll(first.User.ID))

	_, err = uc.ValidateToken(first.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = uc.ValidateToken(second.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuingTokenPrunesExpiredOnes(t *testing.T) {
	uc, userRepo, _ := newTestEnv(t)
	resp := signupFixture(t, uc)

	expired := &authdomain.AuthToken{
		Token:     "expired-token",
		UserID:    resp.User.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, userRepo.SaveAuthToken(expired))

	_, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)

	gone, err := userRepo.FindAuthToken("expired-token")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The still-valid signup token survives the pruning.
	kept, err := userRepo.FindAuthToken(resp.Token)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	uc, _, _ := newTestEnv(t)
	resp := signupFixture(t, uc)

	newPassword := "another123"
	user, err := uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Password: &newPassword})
	require.NoError(t, err)
	assert.True(t, repository.CheckPasswordHash("another123", user.Password))

	_, err = uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "another123"})
	assert.NoError(t, err)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	uc, _, _ := newTestEnv(t)
	resp := signupFixture(t, uc)

	_, err := uc.Signup(&authdto.SignupRequest{Name: "B", Email: "b@x.com", Password: "secret123"})
	require.NoError(t, err)

	taken := "b@x.com"
	_, err = uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfileValidatesFields(t *testing.T) {
	uc, _, _ := newTestEnv(t)
	resp := signupFixture(t, uc)

	badEmail := "not-an-email"
	_, err := uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Email: &badEmail})
	assert.Error(t, err)

	negativeAge := -1
	_, err = uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Age: &negativeAge})
	assert.Error(t, err)

	weak := "myPassword1"
	_, err = uc.UpdateProfile(resp.User, &authdto.UpdateProfileRequest{Password: &weak})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestDeleteProfileCascades(t *testing.T) {
	uc, userRepo, db := newTestEnv(t)
	resp := signupFixture(t, uc)

	taskRepository := taskrepo.NewGormTaskRepository(db)
	require.NoError(t, taskRepository.Create(&taskdomain.Task{Description: "buy milk", OwnerID: resp.User.ID}))
	require.NoError(t, taskRepository.Create(&taskdomain.Task{Description: "walk dog", OwnerID: resp.User.ID}))

	require.NoError(t, uc.DeleteProfile(resp.User))

	user, err := userRepo.FindByID(resp.User.ID)
	require.NoError(t, err)
	assert.Nil(t, user)

	tasks, err := taskRepository.FindByOwner(resp.User.ID, taskrepo.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	token, err := userRepo.FindAuthToken(resp.Token)
	require.NoError(t, err)
	assert.Nil(t, token)
}
