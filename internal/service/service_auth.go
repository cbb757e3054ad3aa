// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/metrics"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

// AuthenticationDependencies groups the collaborators of the
// authentication service. Every field except Metrics is required.
type AuthenticationDependencies struct {
	// Transactor scopes each safe-executed step. Inside a request
	// transaction the step runs under a savepoint, so a swallowed failure
	// does not abort the surrounding command.
	Transactor store.Transactor

	// Principals answers whether a user name exists, independently of its
	// credential row.
	Principals store.PrincipalDirectory

	// Credentials holds password hashes, failed-attempt counters and
	// lockout ends.
	Credentials store.CredentialStore

	// Authorization checks the administrative claims of the caller.
	Authorization ClaimAuthorization

	// Policy validates new passwords in ChangeMyPassword, ResetPassword and
	// SetPassword (unless the caller may ignore it).
	Policy PasswordPolicy

	// ResetTokens issues and validates password reset tokens. SetPassword
	// uses them too, so every password change goes through one path.
	ResetTokens ResetTokenService

	// Sessions signs the caller in after Login and ResetPassword, and out
	// on Logout.
	Sessions SessionManager

	// Plugins are the configured reset token delivery plugins. Sending a
	// token requires exactly one.
	Plugins []DeliveryPlugin

	// Metrics may be nil.
	Metrics *metrics.Metrics

	Clock utils.Clock
}

// authenticationService implements the eight authentication commands. It
// assumes the request was validated and, for SetPassword and
// GeneratePasswordResetToken, authorized by the wrapper returned from
// [NewAuthenticationServiceValidator].
type authenticationService struct {
	transactor    store.Transactor
	principals    store.PrincipalDirectory
	credentials   store.CredentialStore
	authorization ClaimAuthorization
	policy        PasswordPolicy
	resetTokens   ResetTokenService
	sessions      SessionManager
	plugins       []DeliveryPlugin
	metrics       *metrics.Metrics
	clock         utils.Clock

	maxFailedAttempts int
	lockoutDuration   time.Duration

	logger *logger.Logger
}

// NewAuthenticationService creates the core [AuthenticationService].
//
// cfg.MaxFailedAttempts failed logins in a row lock the account for
// cfg.LockoutDuration; reaching the threshold also resets the counter.
//
// Credential failures are reported as a false result rather than an error,
// so callers cannot tell an unknown user from a wrong password or a locked
// account. Production code wraps the result with
// [NewAuthenticationServiceValidator].
func NewAuthenticationService(deps AuthenticationDependencies, cfg config.Auth, logger *logger.Logger) AuthenticationService {
	return &authenticationService{
		transactor:        deps.Transactor,
		principals:        deps.Principals,
		credentials:       deps.Credentials,
		authorization:     deps.Authorization,
		policy:            deps.Policy,
		resetTokens:       deps.ResetTokens,
		sessions:          deps.Sessions,
		plugins:           deps.Plugins,
		metrics:           deps.Metrics,
		clock:             deps.Clock,
		maxFailedAttempts: cfg.MaxFailedAttempts,
		lockoutDuration:   cfg.LockoutDuration,
		logger:            logger,
	}
}

// Login checks the password of userName and, on success, writes a session
// that outlives the browser when rememberMe is set. Every failure, including
// a store error, yields false without an error.
func (s *authenticationService) Login(ctx context.Context, userName, password string, rememberMe bool) (bool, error) {
	var signedIn bool
	ok := s.safeExecute(ctx, "Login", userName, func(ctx context.Context) error {
		var err error
		signedIn, err = s.passwordSignIn(ctx, userName, password, rememberMe)
		return err
	})
	if !ok {
		s.metrics.ObserveLogin(metrics.LoginError)
	}

	return ok && signedIn, nil
}

// Logout revokes the caller's session and clears it from the response.
// Failures are logged only.
func (s *authenticationService) Logout(ctx context.Context) error {
	caller, _ := utils.GetCallerFromContext(ctx)
	s.safeExecute(ctx, "Logout", caller.UserName, s.sessions.SignOut)
	return nil
}

// SetPassword installs password for userName without the old one. Skipping
// the strength policy needs the IgnorePasswordStrengthPolicy claim. Store
// failures are logged and not reported.
func (s *authenticationService) SetPassword(ctx context.Context, userName, password string, ignorePasswordStrengthPolicy bool) error {
	if err := authorize(ctx, s.authorization, models.SetPasswordClaim); err != nil {
		return err
	}

	if ignorePasswordStrengthPolicy {
		if err := authorize(ctx, s.authorization, models.IgnorePasswordStrengthPolicyClaim); err != nil {
			return err
		}
	} else if err := s.policy.Check(ctx, password); err != nil {
		return err
	}

	s.safeExecute(ctx, "Set password", userName, func(ctx context.Context) error {
		credential, err := s.lockCredential(ctx, userName)
		if err != nil {
			return err
		}

		token, err := s.resetTokens.Generate(ctx, *credential)
		if err != nil {
			return err
		}

		return s.redeem(ctx, *credential, token, password)
	})

	return nil
}

// ChangeMyPassword replaces the password of userName when oldPassword
// matches. It reports false for a wrong old password and for store failures.
func (s *authenticationService) ChangeMyPassword(ctx context.Context, userName, oldPassword, newPassword string) (bool, error) {
	if err := s.policy.Check(ctx, newPassword); err != nil {
		return false, err
	}

	var changed bool
	ok := s.safeExecute(ctx, "ChangeMyPassword", userName, func(ctx context.Context) error {
		credential, err := s.lockCredential(ctx, userName)
		if err != nil {
			return err
		}

		match, err := utils.VerifyPassword(credential.PasswordHash, oldPassword)
		if err != nil || !match {
			return err
		}

		if err = s.installPassword(ctx, credential.PrincipalID, newPassword); err != nil {
			return err
		}

		changed = true
		return nil
	})

	return ok && changed, nil
}

// UnlockUser ends the lockout of userName immediately. The failed-attempt
// counter is left as is.
func (s *authenticationService) UnlockUser(ctx context.Context, userName string) error {
	if err := authorize(ctx, s.authorization, models.UnlockUserClaim); err != nil {
		return err
	}

	s.safeExecute(ctx, "Unlock user", userName, func(ctx context.Context) error {
		credential, err := s.findCredential(ctx, userName)
		if err != nil {
			return err
		}

		return s.credentials.SetLockoutEnd(ctx, credential.PrincipalID, s.clock.Now())
	})

	return nil
}

// GeneratePasswordResetToken returns a reset token for userName. Unlike
// SendPasswordResetToken it reports unknown users, because the caller
// already holds an administrative claim.
func (s *authenticationService) GeneratePasswordResetToken(ctx context.Context, userName string) (string, error) {
	log := logger.FromContext(ctx)

	if err := authorize(ctx, s.authorization, models.GeneratePasswordResetTokenClaim); err != nil {
		return "", err
	}

	credential, err := s.findRegistered(ctx, userName)
	if err != nil {
		log.Err(err).Str("func", "*authenticationService.GeneratePasswordResetToken").Msg("error finding principal")
		return "", err
	}
	if credential == nil {
		return "", NewUserError(msgUserNotRegistered, userName)
	}

	token, err := s.resetTokens.Generate(ctx, *credential)
	if err != nil {
		return "", err
	}

	s.metrics.ObserveResetToken(metrics.ResetTokenIssued)
	return token, nil
}

// SendPasswordResetToken hands a reset token for userName to the single
// configured delivery plugin. Delivery happens after the surrounding
// transaction commits, so a retried transaction delivers once.
func (s *authenticationService) SendPasswordResetToken(ctx context.Context, userName string, additionalClientInfo map[string]string) error {
	log := logger.FromContext(ctx)

	plugin, err := resolveDeliveryPlugin(s.plugins)
	if err != nil {
		log.Err(err).Str("func", "*authenticationService.SendPasswordResetToken").Msg("password reset delivery is misconfigured")
		return err
	}

	err = s.sendPasswordResetToken(ctx, plugin, userName, additionalClientInfo)
	if err == nil {
		return nil
	}

	var (
		userErr      *UserError
		clientErr    *ClientError
		frameworkErr *FrameworkError
	)
	if errors.As(err, &userErr) || errors.As(err, &clientErr) || errors.As(err, &frameworkErr) {
		return err
	}

	return s.deliveryFailed(ctx, userName, err)
}

// ResetPassword installs newPassword when passwordResetToken is valid for
// userName, then signs the user in. The sign-in runs under its own
// savepoint: its failure never undoes the reset.
func (s *authenticationService) ResetPassword(ctx context.Context, userName, newPassword, passwordResetToken string) (bool, error) {
	if err := s.policy.Check(ctx, newPassword); err != nil {
		return false, err
	}

	successfulReset := s.safeExecute(ctx, "ResetPassword", userName, func(ctx context.Context) error {
		credential, err := s.lockCredential(ctx, userName)
		if err != nil {
			return err
		}

		if err = s.redeem(ctx, *credential, passwordResetToken, newPassword); err != nil {
			if errors.Is(err, ErrInvalidResetToken) {
				s.metrics.ObserveResetToken(metrics.ResetTokenRejected)
			}
			return err
		}

		return nil
	})

	if successfulReset {
		s.metrics.ObserveResetToken(metrics.ResetTokenRedeemed)
		s.safeExecute(ctx, "Login after ResetPassword", userName, func(ctx context.Context) error {
			_, err := s.passwordSignIn(ctx, userName, newPassword, false)
			return err
		})
	}

	return successfulReset, nil
}

// passwordSignIn runs the lockout state machine for one login attempt.
// It returns false without an error for every credential failure.
func (s *authenticationService) passwordSignIn(ctx context.Context, userName, password string, persistent bool) (bool, error) {
	log := logger.FromContext(ctx)

	credential, err := s.credentials.FindByName(ctx, userName)
	if err != nil {
		return false, err
	}
	if credential == nil {
		s.metrics.ObserveLogin(metrics.LoginUnknown)
		return false, nil
	}

	now := s.clock.Now()
	if credential.IsLockedOut(now) {
		s.metrics.ObserveLogin(metrics.LoginLocked)
		return false, nil
	}

	match, err := utils.VerifyPassword(credential.PasswordHash, password)
	if err != nil {
		return false, err
	}

	if !match {
		updated, err := s.credentials.RecordFailedAttempt(ctx, credential.PrincipalID, s.maxFailedAttempts, now.Add(s.lockoutDuration))
		if err != nil {
			return false, err
		}
		if updated != nil && updated.IsLockedOut(now) {
			s.metrics.ObserveLockout()
			log.Warn().Str("func", "*authenticationService.passwordSignIn").
				Str("user_name", userName).
				Time("lockout_until", *updated.LockoutUntil).
				Msg("account locked after repeated failed logins")
		}
		s.metrics.ObserveLogin(metrics.LoginFailed)
		return false, nil
	}

	if credential.FailedAttemptCount > 0 {
		if err = s.credentials.ResetFailedAttempts(ctx, credential.PrincipalID); err != nil {
			return false, err
		}
	}

	caller := models.Caller{PrincipalID: credential.PrincipalID, UserName: credential.UserName}
	if err = s.sessions.SignIn(ctx, caller, persistent); err != nil {
		return false, err
	}

	s.metrics.ObserveLogin(metrics.LoginSucceeded)
	return true, nil
}

func (s *authenticationService) sendPasswordResetToken(ctx context.Context, plugin DeliveryPlugin, userName string, additionalClientInfo map[string]string) error {
	credential, err := s.findRegistered(ctx, userName)
	if err != nil {
		return err
	}
	if credential == nil {
		// reported as success, so the public endpoint does not reveal which names exist
		logger.FromContext(ctx).Info().Str("func", "*authenticationService.sendPasswordResetToken").
			Str("user_name", userName).
			Msg("password reset token requested for an unknown user")
		return nil
	}

	token, err := s.resetTokens.Generate(ctx, *credential)
	if err != nil {
		return err
	}
	s.metrics.ObserveResetToken(metrics.ResetTokenIssued)

	return store.AfterCommit(ctx, func(ctx context.Context) error {
		err := plugin.SendPasswordResetToken(ctx, userName, additionalClientInfo, token)

		var userErr *UserError
		if err == nil || errors.As(err, &userErr) {
			return err
		}
		return s.deliveryFailed(ctx, userName, err)
	})
}

func (s *authenticationService) deliveryFailed(ctx context.Context, userName string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", "*authenticationService.SendPasswordResetToken").
		Msgf("SendPasswordResetToken failed for %s: %s", userName, err)

	return &FrameworkError{Message: msgDeliveryFailed, Err: fmt.Errorf("%w: %w", ErrDeliveryFailed, err)}
}

// findRegistered resolves userName through the principal directory and
// returns its credential, or nil when no such principal exists.
func (s *authenticationService) findRegistered(ctx context.Context, userName string) (*models.Credential, error) {
	principal, err := s.principals.FindPrincipalByName(ctx, userName)
	if err != nil || principal == nil {
		return nil, err
	}

	credential, err := s.credentials.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, store.ErrNotFound
	}
	return credential, nil
}

// redeem validates token against credential and installs newPassword.
// Callers hold the principal row lock, so the token cannot be redeemed
// twice concurrently.
func (s *authenticationService) redeem(ctx context.Context, credential models.Credential, token, newPassword string) error {
	if err := s.resetTokens.Validate(ctx, credential, token); err != nil {
		return err
	}

	return s.installPassword(ctx, credential.PrincipalID, newPassword)
}

func (s *authenticationService) installPassword(ctx context.Context, principalID, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.credentials.SetPasswordHash(ctx, principalID, hash)
}

func (s *authenticationService) findCredential(ctx context.Context, userName string) (*models.Credential, error) {
	credential, err := s.credentials.FindByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, store.ErrNotFound
	}
	return credential, nil
}

func (s *authenticationService) lockCredential(ctx context.Context, userName string) (*models.Credential, error) {
	credential, err := s.credentials.LockByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, store.ErrNotFound
	}
	return credential, nil
}

// safeExecute runs fn in a transaction scope and reports whether it
// succeeded. Errors are logged at info level and never reach the caller.
func (s *authenticationService) safeExecute(ctx context.Context, action, subject string, fn func(ctx context.Context) error) bool {
	if err := s.transactor.WithinTransaction(ctx, fn); err != nil {
		logger.FromContext(ctx).Info().Err(err).
			Str("func", "*authenticationService.safeExecute").
			Str("action", action).
			Msgf("%s failed: %s, %s", action, subject, err)
		return false
	}
	return true
}
