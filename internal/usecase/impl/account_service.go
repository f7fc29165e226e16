// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	credentialTokens  service.TokenService
	sessionTokens     service.SessionTokenService
	googleAuthService service.OAuthAuthService
	mailer            service.Mailer
	baseURL           string
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	CredentialTokens  service.TokenService
	SessionTokens     service.SessionTokenService
	GoogleAuthService service.OAuthAuthService
	Mailer            service.Mailer
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	baseURL := ""
	if params.Config != nil {
		baseURL = params.Config.App.BaseURL
	}

	return &accountService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		credentialTokens:  params.CredentialTokens,
		sessionTokens:     params.SessionTokens,
		googleAuthService: params.GoogleAuthService,
		mailer:            params.Mailer,
		baseURL:           baseURL,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) verifyEmailURL(secret string) string {
	return fmt.Sprintf("%s/verify-email?token=%s", srv.baseURL, secret)
}

func (srv *accountService) resetPasswordURL(secret string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", srv.baseURL, secret)
}

// SignUp orchestrates the complete registration process. Account creation,
// guest purchase claiming, verification token issuance and the verification
// mail all commit or roll back together.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "sign up input is required")
	}

	srv.log(ctx).Info("Starting sign up", slog.String("email", input.Email))

	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during sign up", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign up", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during sign up")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}

		newUser := &entity.User{
			Name:           input.Name,
			Email:          input.Email,
			HashedPassword: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during sign up")
		}

		if err := srv.claimGuestPurchases(ctx, repoFactory, input.Email, newUser.ID); err != nil {
			return err
		}

		token, err := srv.credentialTokens.Issue(ctx, repoFactory.TokenRepo(), entity.TokenTypeVerification, service.IssueTokenInput{
			Email:  input.Email,
			UserID: &newUser.ID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to issue verification token")
		}

		// Sending inside the transaction: a mail failure must unwind the
		// account so the user can retry with the same address.
		if err := srv.mailer.SendVerification(ctx, input.Email, srv.verifyEmailURL(token.Secret)); err != nil {
			return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute sign up transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign up transaction")
	}

	srv.log(ctx).Debug("Sign up completed", slog.Any("userID", registeredUser.ID))

	return &usecase.SignUpOutput{User: registeredUser}, nil
}

// claimGuestPurchases re-parents guest orders and their download tokens onto
// the user. Idempotent: already-owned rows are never touched.
func (srv *accountService) claimGuestPurchases(ctx context.Context, repoFactory repository.RepositoryFactory, email string, userID uuid.UUID) error {
	claimedOrders, err := repoFactory.OrderRepo().ClaimGuestOrdersByEmail(ctx, email, userID)
	if err != nil {
		return errors.Wrap(err, "failed to claim guest orders")
	}

	claimedTokens, err := repoFactory.TokenRepo().ClaimGuestDownloadTokensByEmail(ctx, email, userID)
	if err != nil {
		return errors.Wrap(err, "failed to claim guest download tokens")
	}

	if claimedOrders > 0 || claimedTokens > 0 {
		srv.log(ctx).Info("Claimed guest purchases",
			slog.Any("userID", userID),
			slog.Int64("orders", claimedOrders),
			slog.Int64("tokens", claimedTokens))
	}

	return nil
}

// Login authenticates email/password credentials.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "login input is required")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if user.HashedPassword == "" || !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if user.EmailVerified == nil {
		srv.log(ctx).Warn("Login blocked for unverified email", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrEmailNotVerified, "login failed")
	}

	accessToken, err := srv.sessionTokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: accessToken, User: user}, nil
}

// SignInWithGoogle handles login or registration via Google Sign-In.
func (srv *accountService) SignInWithGoogle(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.LoginOutput, error) {
	if input == nil || input.IDToken == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "id token is required")
	}

	srv.log(ctx).Info("Handling Google sign in")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}
		loggedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Google sign in transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute Google sign in transaction")
	}

	accessToken, err := srv.sessionTokens.GenerateAccessToken(loggedInUser.ID, loggedInUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{AccessToken: accessToken, User: loggedInUser}, nil
}

// findOrCreateGoogleUser finds the linked account, links by email, or creates
// a fresh verified account, in that order.
func (srv *accountService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	userRepo := repoFactory.UserRepo()
	extRepo := repoFactory.ExternalAccountRepo()

	link, err := extRepo.FindByProvider(ctx, srv.googleAuthService.GetProvider(), oauthUser.ID)
	if err != nil && !errors.Is(err, repository.ErrExternalAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find external account")
	}
	if err == nil {
		user, err := userRepo.FindByID(ctx, link.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user for external account")
		}

		return user, nil
	}

	// No link yet. Attach to an existing account with the same address, or
	// create a new one. Google vouches for the address, so the account is
	// verified from the start.
	user, err := userRepo.FindByEmail(ctx, oauthUser.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email for google auth")
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", oauthUser.Email))

		now := time.Now()
		user = &entity.User{
			Name:          oauthUser.Name,
			Email:         oauthUser.Email,
			AvatarURL:     oauthUser.AvatarURL,
			EmailVerified: &now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for google auth")
		}

		if err := srv.claimGuestPurchases(ctx, repoFactory, user.Email, user.ID); err != nil {
			return nil, err
		}
	} else if user.EmailVerified == nil {
		now := time.Now()
		user.EmailVerified = &now
		if err := userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to mark user verified for google auth")
		}
	}

	newLink := &entity.ExternalAccount{
		UserID:         user.ID,
		Provider:       srv.googleAuthService.GetProvider(),
		ProviderUserID: oauthUser.ID,
	}
	if err := extRepo.Create(ctx, newLink); err != nil {
		return nil, errors.Wrap(err, "failed to create external account link")
	}

	return user, nil
}

// VerifyEmail consumes a VERIFICATION token, marks the address verified and
// claims any guest purchases, all in one transaction.
func (srv *accountService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	if input == nil || input.Secret == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "verification token is required")
	}

	srv.log(ctx).Info("Verifying email address")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := srv.credentialTokens.Consume(ctx, repoFactory.TokenRepo(), input.Secret, entity.TokenTypeVerification)
		if err != nil {
			return err
		}

		user, err := srv.resolveTokenUser(ctx, repoFactory.UserRepo(), token)
		if err != nil {
			return err
		}

		if user.EmailVerified == nil {
			now := time.Now()
			user.EmailVerified = &now
			if err := repoFactory.UserRepo().Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to mark email verified")
			}
		}

		return srv.claimGuestPurchases(ctx, repoFactory, user.Email, user.ID)
	})

	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	return nil
}

// resolveTokenUser loads the account a token belongs to, by owner ID when
// attributed, otherwise by email.
func (srv *accountService) resolveTokenUser(ctx context.Context, userRepo repository.UserRepository, token *entity.Token) (*entity.User, error) {
	if token.UserID != nil {
		user, err := userRepo.FindByID(ctx, *token.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find token owner")
		}

		return user, nil
	}

	user, err := userRepo.FindByEmail(ctx, token.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "no account for token email")
		}

		return nil, errors.Wrap(err, "failed to find token owner by email")
	}

	return user, nil
}

// RequestPasswordReset issues a RESET token and mails the link. Unknown or
// ineligible addresses report success without telling the caller anything.
func (srv *accountService) RequestPasswordReset(ctx context.Context, input *usecase.RequestPasswordResetInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "password reset input is required")
	}

	srv.log(ctx).Info("Password reset requested")

	if err := validateEmail(input.Email); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same outcome as the happy path so callers cannot enumerate accounts.
			srv.log(ctx).Debug("Password reset for unknown address")

			return nil
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()

		// One live reset link at a time.
		if err := tokenRepo.DeleteByTypeAndUserID(ctx, entity.TokenTypeReset, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete previous reset tokens")
		}

		token, err := srv.credentialTokens.Issue(ctx, tokenRepo, entity.TokenTypeReset, service.IssueTokenInput{
			Email:  user.Email,
			UserID: &user.ID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to issue reset token")
		}

		if err := srv.mailer.SendPasswordReset(ctx, user.Email, srv.resetPasswordURL(token.Secret)); err != nil {
			return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	return nil
}

// ConfirmPasswordReset consumes a RESET token and sets the new password hash
// in the same transaction.
func (srv *accountService) ConfirmPasswordReset(ctx context.Context, input *usecase.ConfirmPasswordResetInput) error {
	if input == nil || input.Secret == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "reset token is required")
	}

	srv.log(ctx).Info("Confirming password reset")

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := srv.credentialTokens.Consume(ctx, repoFactory.TokenRepo(), input.Secret, entity.TokenTypeReset)
		if err != nil {
			return err
		}

		user, err := srv.resolveTokenUser(ctx, repoFactory.UserRepo(), token)
		if err != nil {
			return err
		}

		user.HashedPassword = hashedPassword
		if err := repoFactory.UserRepo().Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Password reset confirmation failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset confirmation transaction")
	}

	return nil
}

// GetProfile returns the current account data.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile changes display name and avatar.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "profile input is required")
	}
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for profile update")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.AvatarURL != nil {
			user.AvatarURL = *input.AvatarURL
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// EmailExists reports whether a non-deleted account owns the address.
func (srv *accountService) EmailExists(ctx context.Context, email string) (bool, error) {
	if err := validateEmail(email); err != nil {
		return false, err
	}

	exists, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return exists, nil
}

// DeleteAccount anonymizes the account in place. Orders survive with their
// emails blanked so revenue records stay consistent; credentials, tokens and
// external logins are purged for good.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		orderRepo := repoFactory.OrderRepo()
		tokenRepo := repoFactory.TokenRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for deletion")
		}
		if user.IsDeleted {
			return errors.Wrap(domainerrors.ErrUserNotFound, "account already deleted")
		}

		if err := repoFactory.ExternalAccountRepo().DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete external accounts")
		}

		if err := tokenRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user tokens")
		}

		// Guest download tokens scoped to the user's orders might still be
		// unowned; kill those through the order IDs.
		orderIDs, err := orderRepo.FindIDsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list user orders")
		}
		if len(orderIDs) > 0 {
			if err := tokenRepo.DeleteByOrderIDs(ctx, orderIDs); err != nil {
				return errors.Wrap(err, "failed to delete order download tokens")
			}
		}

		placeholderEmail := fmt.Sprintf("deleted-%s@anonymized.invalid", uuid.New().String())

		if err := orderRepo.AnonymizeByUserID(ctx, userID, placeholderEmail); err != nil {
			return errors.Wrap(err, "failed to anonymize orders")
		}

		now := time.Now()
		user.Email = placeholderEmail
		user.Name = entity.AnonymizedName
		user.HashedPassword = ""
		user.AvatarURL = ""
		user.EmailVerified = nil
		user.IsDeleted = true
		user.DeletedAt = &now

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to scrub user record")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute account deletion transaction", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}
