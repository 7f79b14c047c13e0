// Package sheets implementa la fachada de registro sobre Google Sheets:
// una hoja por entidad, columna A vacía por convención, clave RecID en columna B
// y encabezados autoritativos en la fila 1.
package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/tacticadev/gestor-api/pkg/config"
)

// NewService crea el servicio de Google Sheets con las credenciales configuradas.
// CredentialsJSON tiene prioridad; si no hay credenciales explícitas se usan
// las Application Default Credentials.
func NewService(ctx context.Context, cfg config.GoogleConfig) (*sheetsapi.Service, error) {
	opts := credentialOptions(cfg)
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("crear servicio de Sheets: %w", err)
	}
	return svc, nil
}

// NewServiceWithToken crea el servicio de Sheets con el token OAuth de un usuario
// (flujo de autorización por código, mismo token que el login).
func NewServiceWithToken(ctx context.Context, ts oauth2.TokenSource) (*sheetsapi.Service, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("crear servicio de Sheets: %w", err)
	}
	return svc, nil
}

func credentialOptions(cfg config.GoogleConfig) []option.ClientOption {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	return opts
}

// Client ata un servicio de Sheets a un spreadsheet concreto. Todos los
// repositorios de este paquete se construyen sobre un Client.
type Client struct {
	api valuesAPI
}

// NewClient construye el cliente para el spreadsheet dado.
func NewClient(svc *sheetsapi.Service, spreadsheetID string) *Client {
	return &Client{api: &googleValues{svc: svc, spreadsheetID: spreadsheetID}}
}

// newClientWithAPI permite inyectar una implementación alternativa en tests.
func newClientWithAPI(api valuesAPI) *Client {
	return &Client{api: api}
}
