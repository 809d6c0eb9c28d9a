package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"casetrack-backend/internal/auth"
	auditDomain "casetrack-backend/internal/domain/audit"
	"casetrack-backend/internal/domain/fault"
	userDomain "casetrack-backend/internal/domain/user"
	"casetrack-backend/internal/testutil/auditmock"
	"casetrack-backend/internal/testutil/usermock"

	"gorm.io/gorm"
)

func newLoginFixtures(t *testing.T) (*usermock.Repo, *auditmock.Recorder, *Usecase) {
	t.Helper()
	users := &usermock.Repo{}
	recorder := &auditmock.Recorder{}
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return users, recorder, NewUsecase(users, issuer, recorder)
}

func seededUser(t *testing.T, password string, active bool) *userDomain.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &userDomain.User{
		ID:           7,
		Email:        "tech@fiscalia.test",
		PasswordHash: hash,
		Role:         userDomain.RoleTechnician,
		Active:       active,
	}
}

func TestLogin_Success(t *testing.T) {
	users, recorder, uc := newLoginFixtures(t)
	users.GetByEmailFn = func(ctx context.Context, email string) (*userDomain.User, error) {
		return seededUser(t, "s3cret", true), nil
	}

	res, err := uc.Login(context.Background(), "tech@fiscalia.test", "s3cret", "10.0.0.1", "req-1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" {
		t.Errorf("empty token")
	}
	if res.User.ID != 7 {
		t.Errorf("user = %+v", res.User)
	}

	got := recorder.Recorded()
	if len(got) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(got))
	}
	e := got[0]
	if e.Action != auditDomain.ActionLogin || e.EntityType != auditDomain.EntityAuth {
		t.Errorf("entry = %s/%s", e.Action, e.EntityType)
	}
	if e.CaseID != auditDomain.NoCase || e.UserID != 7 || e.IPAddress != "10.0.0.1" {
		t.Errorf("entry fields: %+v", e)
	}
}

// Unknown email, bad password and suspended account must be
// indistinguishable to the caller.
func TestLogin_FailuresAreUniform(t *testing.T) {
	tests := []struct {
		name     string
		lookup   func(t *testing.T) func(ctx context.Context, email string) (*userDomain.User, error)
		password string
	}{
		{
			"unknown email",
			func(t *testing.T) func(ctx context.Context, email string) (*userDomain.User, error) {
				return func(ctx context.Context, email string) (*userDomain.User, error) {
					return nil, gorm.ErrRecordNotFound
				}
			},
			"s3cret",
		},
		{
			"wrong password",
			func(t *testing.T) func(ctx context.Context, email string) (*userDomain.User, error) {
				u := seededUser(t, "s3cret", true)
				return func(ctx context.Context, email string) (*userDomain.User, error) { return u, nil }
			},
			"wrong",
		},
		{
			"suspended account",
			func(t *testing.T) func(ctx context.Context, email string) (*userDomain.User, error) {
				u := seededUser(t, "s3cret", false)
				return func(ctx context.Context, email string) (*userDomain.User, error) { return u, nil }
			},
			"s3cret",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, recorder, uc := newLoginFixtures(t)
			users.GetByEmailFn = tt.lookup(t)

			_, err := uc.Login(context.Background(), "tech@fiscalia.test", tt.password, "10.0.0.1", "req-1")
			if !errors.Is(err, fault.ErrForbidden) {
				t.Fatalf("err = %v, want forbidden", err)
			}
			if err.Error() != "not authorized: invalid credentials" {
				t.Errorf("message = %q leaks the failing check", err.Error())
			}
			if len(recorder.Recorded()) != 0 {
				t.Errorf("failed login audited")
			}
		})
	}
}

func TestLogin_PanickingRecorderDoesNotFailCall(t *testing.T) {
	users, recorder, uc := newLoginFixtures(t)
	recorder.PanicOnRecord = true
	users.GetByEmailFn = func(ctx context.Context, email string) (*userDomain.User, error) {
		return seededUser(t, "s3cret", true), nil
	}

	if _, err := uc.Login(context.Background(), "tech@fiscalia.test", "s3cret", "", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
}
