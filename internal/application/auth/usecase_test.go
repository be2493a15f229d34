package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/prixmathaiti/prixmat-api/internal/application/auth"
	"github.com/prixmathaiti/prixmat-api/internal/application/dto"
	"github.com/prixmathaiti/prixmat-api/internal/domain"
	"github.com/prixmathaiti/prixmat-api/internal/domain/entity"
	pkgjwt "github.com/prixmathaiti/prixmat-api/pkg/jwt"
)

// fakeUserRepo dépôt utilisateurs en mémoire, indexé par ID et email.
type fakeUserRepo struct {
	users map[string]*entity.User // par ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	copie := *u
	r.users[u.ID] = &copie
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		copie := *u
		return &copie, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copie := *u
			return &copie, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	copie := *u
	r.users[u.ID] = &copie
	return nil
}

var cfgTest = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "prixmat-test"}

func TestRegister_CreeUnClientAvecHashBcrypt(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, cfgTest)

	u, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "mason@prixmat.ht",
		Password: "chantier2024",
		Name:     "Mason Pierre",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, u.Role, "le rôle par défaut est client")
	assert.NotEmpty(t, u.ID)

	stored, _ := repo.GetByEmail(context.Background(), "mason@prixmat.ht")
	require.NotNil(t, stored)
	assert.NotEqual(t, "chantier2024", stored.PasswordHash, "le mot de passe ne doit jamais être stocké en clair")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("chantier2024")))
}

func TestRegister_EmailDejaPris_RenvoieConflit(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, cfgTest)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.ht", Password: "secret-1"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.ht", Password: "secret-2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_MotDePasseTropCourt(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), cfgTest)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.ht", Password: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailMalForme_Rejete(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), cfgTest)

	for _, email := range []string{"", "sans-arobase", "@b.ht", "a@", "a@sanspoint", "a b@c.ht"} {
		_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: email, Password: "secret-1"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "email %q", email)
	}
}

func TestLogin_RenvoieUnJetonValide(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, cfgTest)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.ht", Password: "secret-1"})
	require.NoError(t, err)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.ht", Password: "secret-1"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	userID, email, role, err := pkgjwt.Parse(cfgTest.Secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)
	assert.Equal(t, "a@b.ht", email)
	assert.Equal(t, entity.RoleClient, role)
}

func TestLogin_MauvaisMotDePasse_RenvoieUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, cfgTest)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.ht", Password: "secret-1"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.ht", Password: "mauvais"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInconnu_RenvoieUserNotFound(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), cfgTest)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "personne@b.ht", Password: "secret-1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestResetPassword_EmailInconnu_ReponseSilencieuse(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), cfgTest)

	token, err := uc.ResetPassword(context.Background(), "personne@b.ht")
	assert.NoError(t, err, "un email inconnu ne doit pas faire échouer la demande")
	assert.Empty(t, token, "aucun token n'est émis pour un compte inexistant")
}

func TestResetPassword_EmetUnTokenPersiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, cfgTest)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.ht", Password: "secret-1"})
	require.NoError(t, err)

	token, err := uc.ResetPassword(context.Background(), "a@b.ht")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	stored, _ := repo.GetByEmail(context.Background(), "a@b.ht")
	assert.Equal(t, token, stored.ResetToken)
	require.NotNil(t, stored.ResetExpiresAt)
}

func TestChangePassword_RemplaceEtInvalideLeReset(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, cfgTest)

	u, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.ht", Password: "secret-1"})
	require.NoError(t, err)
	_, err = uc.ResetPassword(context.Background(), "a@b.ht")
	require.NoError(t, err)

	err = uc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordRequest{NewPassword: "nouveau-secret"})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), u.ID)
	assert.Empty(t, stored.ResetToken, "le token de réinitialisation doit être invalidé")
	assert.Nil(t, stored.ResetExpiresAt)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nouveau-secret")))

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.ht", Password: "secret-1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "l'ancien mot de passe ne doit plus fonctionner")
}
