package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/domain"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	"github.com/prixmathaiti/prixmat-api/internal/domain/repository"
	"github.com/prixmathaiti/prixmat-api/pkg/jwt"
)

// MotDePasseMin longueur minimale d'un mot de passe.
const MotDePasseMin = 6

// dureeTokenReset validité d'un token de réinitialisation.
const dureeTokenReset = time.Hour

// JWTConfig paramètres de génération des tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cas d'usage d'authentification : inscription, connexion,
// réinitialisation et changement de mot de passe.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register crée un utilisateur : hash bcrypt du mot de passe puis persistance.
// Renvoie ErrEmailAlreadyExists si l'email est déjà enregistré.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !entity.ValidEmail(in.Email) || len(in.Password) < MotDePasseMin {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login vérifie email/mot de passe, génère un JWT et renvoie token + utilisateur.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// ResetPassword émet un token de réinitialisation à usage unique (1 h).
// Si l'email est inconnu, la réponse reste identique : on ne révèle pas
// quels comptes existent.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, email string) (string, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	token := uuid.New().String()
	expiry := time.Now().Add(dureeTokenReset)
	user.ResetToken = token
	user.ResetExpiresAt = &expiry
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return "", err
	}
	return token, nil
}

// ChangePassword remplace le mot de passe de l'utilisateur connecté
// et invalide un éventuel token de réinitialisation en cours.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < MotDePasseMin {
		return domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetExpiresAt = nil
	user.UpdatedAt = time.Now()
	return uc.users.Update(ctx, user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
