// Package auth implementa el login con Google por código de autorización y la
// emisión del token de sesión de la API. El logout es del lado del cliente:
// descartar el token (no hay estado de sesión en el servidor).
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/domain/repository"
	"github.com/tacticadev/gestor-api/pkg/config"
	"github.com/tacticadev/gestor-api/pkg/jwt"
)

const userinfoEndpoint = "https://openidconnect.googleapis.com/v1/userinfo"

// Scopes mínimos del gestor: identidad más los archivos y planillas que la
// propia aplicación crea.
var scopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/spreadsheets",
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Identity identidad devuelta por el userinfo de Google.
type Identity struct {
	Sub    string `json:"sub"`
	Nombre string `json:"name"`
	Correo string `json:"email"`
}

// Seeder registra al dueño del token como Administrador si la hoja de
// usuarios está vacía. Lo implementa usecase.UsuarioUseCase.
type Seeder interface {
	SeedAdminFromAuth(ctx context.Context, nombre, correo string) (*entity.Usuario, error)
}

// Service flujo de login: URL de autorización, canje del código y emisión
// del token de sesión con el rango leído de la hoja de usuarios.
type Service struct {
	oauth    *oauth2.Config
	usuarios repository.UsuarioRepository
	seeder   Seeder
	jwtCfg   JWTConfig
}

// NewService construye el servicio de auth.
func NewService(cfg config.GoogleConfig, usuarios repository.UsuarioRepository, seeder Seeder, jwtCfg JWTConfig) *Service {
	return &Service{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
		usuarios: usuarios,
		seeder:   seeder,
		jwtCfg:   jwtCfg,
	}
}

// LoginURL devuelve la URL de autorización de Google para el state dado.
func (s *Service) LoginURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Callback canjea el código, resuelve la identidad y emite el token de la
// API. El rango sale de la hoja de usuarios; un correo no registrado entra
// como Visitante. Si la hoja está vacía, el primero que entra queda como
// Administrador.
func (s *Service) Callback(ctx context.Context, code string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrInvalidInput
	}
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("canjear código de autorización: %w", err)
	}
	ident, err := s.fetchIdentity(ctx, token)
	if err != nil {
		return nil, err
	}

	if seeded, err := s.seeder.SeedAdminFromAuth(ctx, ident.Nombre, ident.Correo); err != nil {
		return nil, err
	} else if seeded != nil {
		return s.emitir(seeded)
	}

	u, err := s.usuarios.GetByCorreo(ctx, strings.ToLower(ident.Correo))
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &entity.Usuario{
			IDUsuario: strings.ToLower(ident.Correo),
			Nombre:    ident.Nombre,
			Correo:    strings.ToLower(ident.Correo),
			Rango:     entity.RangoVisitante,
		}
	}
	return s.emitir(u)
}

func (s *Service) emitir(u *entity.Usuario) (*dto.TokenResponse, error) {
	userID := u.RecID
	if userID == "" {
		userID = u.Correo
	}
	token, err := jwt.Generate(s.jwtCfg.Secret, userID, u.Correo, u.Nombre, u.Rango, s.jwtCfg.Issuer, s.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, Usuario: dto.ToUsuarioResponse(u)}, nil
}

// fetchIdentity consulta el userinfo de OpenID Connect con el token canjeado.
func (s *Service) fetchIdentity(ctx context.Context, token *oauth2.Token) (*Identity, error) {
	client := s.oauth.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consultar userinfo: estado %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var ident Identity
	if err := json.Unmarshal(body, &ident); err != nil {
		return nil, fmt.Errorf("decodificar userinfo: %w", err)
	}
	if ident.Correo == "" {
		return nil, fmt.Errorf("userinfo sin correo")
	}
	return &ident, nil
}

// TokenSource devuelve el TokenSource del flujo OAuth para el token dado;
// se usa para construir servicios de Sheets/Drive con credenciales del usuario.
func (s *Service) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	return s.oauth.TokenSource(ctx, token)
}
