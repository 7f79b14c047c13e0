// Package drive implementa la fachada de blobs sobre Google Drive: carpetas del
// gestor, subida de imágenes, enlaces resolubles y permisos por correo.
package drive

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	driveapi "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/tacticadev/gestor-api/pkg/config"
)

// NewService crea el servicio de Google Drive con las credenciales configuradas.
func NewService(ctx context.Context, cfg config.GoogleConfig) (*driveapi.Service, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	svc, err := driveapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("crear servicio de Drive: %w", err)
	}
	return svc, nil
}

// NewServiceWithToken crea el servicio de Drive con el token OAuth de un usuario.
func NewServiceWithToken(ctx context.Context, ts oauth2.TokenSource) (*driveapi.Service, error) {
	svc, err := driveapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("crear servicio de Drive: %w", err)
	}
	return svc, nil
}
