package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-estoque/api/internal/application/auth"
	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
	pkgjwt "github.com/nexus-estoque/api/pkg/jwt"
)

// fake em memória do UserRepository.
type userRepoFake struct {
	porID       map[string]*entity.User
	porUsername map[string]*entity.User
}

func newUserRepoFake() *userRepoFake {
	return &userRepoFake{
		porID:       make(map[string]*entity.User),
		porUsername: make(map[string]*entity.User),
	}
}

func (r *userRepoFake) Create(u *entity.User) error {
	if _, ok := r.porUsername[u.Username]; ok {
		return domain.ErrUsuarioJaExiste
	}
	cp := *u
	r.porID[u.ID] = &cp
	r.porUsername[u.Username] = &cp
	return nil
}

func (r *userRepoFake) GetByID(id string) (*entity.User, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *userRepoFake) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.porUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func novoAuthUC() (*auth.UseCase, *userRepoFake) {
	repo := newUserRepoFake()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 30,
		Issuer:     "nexus-test",
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CriaUsuarioComPapelPadrao(t *testing.T) {
	uc, repo := novoAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, entity.PapelUsuario, out.Papel, "papel omitido vira usuario")

	// A senha nunca fica em claro no repositório.
	persisted := repo.porUsername["maria"]
	require.NotNil(t, persisted)
	assert.NotEqual(t, "senha123", persisted.SenhaHash)
	assert.NotEmpty(t, persisted.SenhaHash)
}

func TestRegister_PapelExplicito(t *testing.T) {
	uc, _ := novoAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Username: "chefe",
		Password: "senha123",
		Papel:    entity.PapelGerente,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PapelGerente, out.Papel)
}

func TestRegister_PapelDesconhecido_Invalido(t *testing.T) {
	uc, _ := novoAuthUC()

	_, err := uc.Register(dto.RegisterRequest{
		Username: "maria",
		Password: "senha123",
		Papel:    "root",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := novoAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "a"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "maria", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrUsuarioJaExiste)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas(t *testing.T) {
	uc, _ := novoAuthUC()
	registered, err := uc.Register(dto.RegisterRequest{
		Username: "maria",
		Password: "senha123",
		Papel:    entity.PapelAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "senha123"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, registered.ID, out.User.ID)

	// O token carrega identidade e papel para o middleware decidir sem DB.
	claims, err := pkgjwt.Parse("segredo-de-teste", out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, entity.PapelAdmin, claims.Papel)
}

// Usuário inexistente e senha errada produzem o MESMO erro, sem vazar qual dos dois.
func TestLogin_CredenciaisInvalidas(t *testing.T) {
	uc, _ := novoAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "senha123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrNaoAutenticado)

	_, err = uc.Login(dto.LoginRequest{Username: "nao-existe", Password: "senha123"})
	assert.ErrorIs(t, err, domain.ErrNaoAutenticado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Me
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_BuscaFresca(t *testing.T) {
	uc, repo := novoAuthUC()
	registered, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "senha123"})
	require.NoError(t, err)

	out, err := uc.Me(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria", out.Username)

	// Usuário removido depois de emitido o token: Me deve falhar.
	delete(repo.porID, registered.ID)
	_, err = uc.Me(registered.ID)
	assert.ErrorIs(t, err, domain.ErrNaoAutenticado)
}
