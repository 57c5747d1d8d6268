package services

import (
	"fmt"

	"taskflow_backend/internal/auth"
	"taskflow_backend/internal/email"
	"taskflow_backend/internal/logger"
	"taskflow_backend/internal/models"
	"taskflow_backend/internal/repositories"
	"taskflow_backend/internal/services/dto"
	"taskflow_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.RefreshResponse, error)
	Logout(refreshToken string) error
	ForgotPassword(emailAddr string) error
	ResetPassword(rawToken, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	tokens           *auth.TokenManager
	emailProvider    email.Provider
	clientURL        string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
	clientURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokens:           tokens,
		emailProvider:    emailProvider,
		clientURL:        clientURL,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same error as a wrong password; account existence must
			// not be observable.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Additive: existing sessions on other devices stay valid.
	return s.issueTokens(user)
}

// Refresh issues a new access token when the refresh token is
// cryptographically valid, unexpired, and still present in its user's active
// set. The refresh token itself is not rotated.
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Presence in the store is the revocation check: a logged-out or
	// reset-revoked token parses fine but has no row.
	stored, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil || stored.UserID != user.ID {
		return nil, apperrors.ErrInvalidToken
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout revokes the refresh token. Every failure mode short of a missing
// request body is reported as success so session validity cannot be probed.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.FindByID(claims.UserID); err != nil {
		return nil
	}

	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		logger.Warn("failed to delete refresh token on logout", "error", err)
	}
	return nil
}

// ForgotPassword stores a reset-token digest with a one hour expiry and mails
// the raw token. An unknown email is reported as success. A failed send rolls
// the stored reset state back so no usable pending token survives.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	rawToken, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	exp := timeNow().Add(resetTokenTTL)
	user.ResetTokenHash = auth.HashResetToken(rawToken)
	user.ResetTokenExp = &exp

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.clientURL, rawToken)
	if err := s.emailProvider.SendPasswordReset(user.Email, resetURL); err != nil {
		logger.Error("failed to send password reset email", "error", err)

		user.ResetTokenHash = ""
		user.ResetTokenExp = nil
		if rbErr := s.userRepo.Update(user); rbErr != nil {
			logger.Error("failed to roll back reset token state", "error", rbErr)
		}
		return apperrors.ErrEmailSendFailed
	}

	return nil
}

// ResetPassword consumes a raw reset token, re-hashes the password and
// force-logs-out every session of the user.
func (s *AuthServiceImpl) ResetPassword(rawToken, newPassword string) error {
	user, err := s.userRepo.FindByResetTokenHash(auth.HashResetToken(rawToken))
	if err != nil {
		// "not found" and "expired" are indistinguishable on purpose.
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ValidationError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ResetTokenHash = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.refreshTokenRepo.DeleteByUserID(user.ID); err != nil {
		logger.Warn("failed to revoke refresh tokens after password reset",
			"user_id", user.ID, "error", err)
	}

	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, exp, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: exp,
	}
	if err := s.refreshTokenRepo.Create(record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User: &dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
