package usecase

import (
	"context"
	"strings"

	"github.com/tacticadev/gestor-api/internal/application/dto"
	"github.com/tacticadev/gestor-api/internal/domain"
	"github.com/tacticadev/gestor-api/internal/domain/entity"
	"github.com/tacticadev/gestor-api/internal/domain/repository"
	"github.com/tacticadev/gestor-api/internal/events"
	"github.com/tacticadev/gestor-api/pkg/recid"
	"github.com/tacticadev/gestor-api/pkg/textutil"
)

// ProductoUseCase casos de uso CRUD para productos.
type ProductoUseCase struct {
	repo repository.ProductoRepository
	bus  *events.Bus
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, bus *events.Bus) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, bus: bus}
}

// List devuelve los productos; buscar filtra por código o nombre sin
// distinguir mayúsculas ni acentos.
func (uc *ProductoUseCase) List(ctx context.Context, buscar string) ([]*dto.ProductoResponse, error) {
	productos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		if buscar != "" &&
			!textutil.ContainsFold(p.Nombre, buscar) &&
			!textutil.ContainsFold(p.Codigo, buscar) {
			continue
		}
		out = append(out, dto.ToProductoResponse(p))
	}
	return out, nil
}

// GetByRecID devuelve (nil, nil) cuando el producto no existe.
func (uc *ProductoUseCase) GetByRecID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return dto.ToProductoResponse(p), nil
}

// Create crea un producto nuevo con RecID fresco.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Producto{
		RecID:       recid.New(),
		Codigo:      strings.TrimSpace(in.Codigo),
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: strings.TrimSpace(in.Descripcion),
		RecIDImagen: strings.TrimSpace(in.RecIDImagen),
	}
	if err := uc.repo.Add(ctx, p); err != nil {
		return nil, err
	}
	uc.bus.Publish(events.TopicProductoRefresh, p.RecID)
	return dto.ToProductoResponse(p), nil
}

// Update edita los campos presentes en la petición. Devuelve (nil, nil) si
// el producto no existe.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByRecID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Codigo != nil {
		p.Codigo = strings.TrimSpace(*in.Codigo)
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Descripcion != nil {
		p.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	if in.RecIDImagen != nil {
		p.RecIDImagen = strings.TrimSpace(*in.RecIDImagen)
	}
	ok, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	uc.bus.Publish(events.TopicProductoRefresh, p.RecID)
	return dto.ToProductoResponse(p), nil
}

// Delete borra el producto. Devuelve false si no existe. La Imagen asociada
// no se borra: el caller decide si limpiarla.
func (uc *ProductoUseCase) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := uc.repo.DeleteByRecID(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		uc.bus.Publish(events.TopicProductoRefresh, id)
	}
	return ok, nil
}
