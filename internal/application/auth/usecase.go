package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexus-estoque/api/internal/application/dto"
	"github.com/nexus-estoque/api/internal/domain"
	"github.com/nexus-estoque/api/internal/domain/entity"
	"github.com/nexus-estoque/api/internal/domain/repository"
	"github.com/nexus-estoque/api/pkg/jwt"
	"github.com/nexus-estoque/api/pkg/password"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: registro, login e usuário atual.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrUsuarioJaExiste se o username já está registrado; papel omitido vira "usuario".
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsuarioJaExiste
	}
	papel := in.Papel
	if papel == "" {
		papel = entity.PapelUsuario
	}
	if !entity.PapelValido(papel) {
		return nil, domain.ErrEntradaInvalida
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Email:     in.Email,
		SenhaHash: hash,
		Papel:     papel,
		CriadoEm:  time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/senha, gera o JWT e retorna token + usuário.
// Qualquer falha de credencial (usuário inexistente ou senha errada) vira ErrNaoAutenticado,
// sem distinguir os dois casos.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(in.Password, user.SenhaHash) {
		return nil, domain.ErrNaoAutenticado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Papel, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *toUserResponse(user),
	}, nil
}

// Me devolve o usuário atual (busca fresca na DB a partir do id do token).
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNaoAutenticado
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Papel:    u.Papel,
		CriadoEm: u.CriadoEm,
	}
}
