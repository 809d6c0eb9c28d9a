package auth

import (
	"context"
	"errors"

	"casetrack-backend/internal/auth"
	auditDomain "casetrack-backend/internal/domain/audit"
	"casetrack-backend/internal/domain/fault"
	userDomain "casetrack-backend/internal/domain/user"
	"casetrack-backend/internal/usecase/besteffort"

	"gorm.io/gorm"
)

type LoginResult struct {
	Token string           `json:"token"`
	User  *userDomain.User `json:"user"`
}

// Usecase authenticates users and issues tokens. Failed and successful
// logins both leave an audit trail.
type Usecase struct {
	users    userDomain.Repository
	issuer   *auth.TokenIssuer
	recorder auditDomain.Recorder
}

func NewUsecase(users userDomain.Repository, issuer *auth.TokenIssuer, recorder auditDomain.Recorder) *Usecase {
	return &Usecase{users: users, issuer: issuer, recorder: recorder}
}

// Login verifies credentials. Unknown email, wrong password and inactive
// account all return the same error so the response does not leak which
// part failed.
func (u *Usecase) Login(ctx context.Context, email, password, ip, requestID string) (*LoginResult, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.Forbidden("invalid credentials")
		}
		return nil, err
	}
	if !usr.Active || !auth.CheckPassword(usr.PasswordHash, password) {
		return nil, fault.Forbidden("invalid credentials")
	}

	token, err := u.issuer.Generate(usr)
	if err != nil {
		return nil, err
	}

	besteffort.Do("audit LOGIN", func() error {
		u.recorder.Record(ctx, auditDomain.Entry{
			UserID:      usr.ID,
			Action:      auditDomain.ActionLogin,
			EntityType:  auditDomain.EntityAuth,
			EntityID:    usr.ID,
			CaseID:      auditDomain.NoCase,
			Description: "User logged in: " + usr.Email,
			IPAddress:   ip,
			RequestID:   requestID,
			DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{Email: usr.Email}),
		})
		return nil
	})
	return &LoginResult{Token: token, User: usr}, nil
}
