package auth

import (
	"github.com/tu-usuario/cement-ledger/internal/application/dto"
	"github.com/tu-usuario/cement-ledger/internal/domain"
	"github.com/tu-usuario/cement-ledger/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del operador único del sistema. La cementera tiene un
// solo usuario configurado por entorno; no hay registro ni roles.
type AuthUseCase struct {
	username     string
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso. La contraseña configurada se
// hashea con bcrypt al arrancar; en memoria solo queda el hash.
func NewAuthUseCase(username, password string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthUseCase{username: username, passwordHash: hash, jwtCfg: jwtCfg}, nil
}

// Login verifica usuario/contraseña y genera el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: uc.username}, nil
}
