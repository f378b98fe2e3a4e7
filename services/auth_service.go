package services

import (
	"fmt"
	"greeting-hub/auth"
	"greeting-hub/contract"
	"greeting-hub/errors"
)

type IAuthService interface {
	Login(email, password string) (Token, error)
	Register(email, password string) (Token, error)
}

type AuthService struct {
	userRepository contract.IUserStore
	tokens         *auth.Tokens
}

type Token string

func NewAuthService(repo contract.IUserStore, tokens *auth.Tokens) IAuthService {
	return &AuthService{userRepository: repo, tokens: tokens}
}

func (s *AuthService) Register(email, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Email:    email,
		Password: password,
	}

	// 1. Validate before any expensive cryptographic operation
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", err
	}

	// 2. The repository never sees a plain password
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Propagates ErrUserAlreadyExists if the email is taken
	userID, err := s.userRepository.CreateUser(email, hashedPassword)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.GenerateToken(userID, []string{"user"})
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

func (s *AuthService) Login(email, password string) (Token, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{Email: email, Password: password}); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	// Generic error to prevent user enumeration
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Roles)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}
