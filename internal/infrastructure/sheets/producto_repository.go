package sheets

import (
	"context"
	"strings"
	"sync"

	"github.com/tacticadev/gestor-api/internal/domain/entity"
)

const (
	productoTab = "producto"

	// Hojas nuevas se crean con esta columna de imagen.
	productoDefaultImgHeader = "RecID_imagen"
)

var productoHeadersBase = []string{
	"data_ini_prox",
	"RecID",
	"codigo_producto",
	"nombre_producto",
	"descripcion_producto",
}

// Alias históricos aceptados para la columna de imagen en hojas ya existentes.
// En la salida del repositorio siempre se normaliza a RecID_imagen.
var productoImgAliases = []string{
	"RecID_imagen",
	"RecID_Imagen",
	"RecId_imagen",
	"RecId_Imagen",
	"ID_imagen",
	"ID_Imagen",
}

// ProductoRepository implementa repository.ProductoRepository sobre la hoja
// 'producto'. Respeta el orden real de columnas de la hoja y tolera los alias
// históricos de la columna de imagen.
type ProductoRepository struct {
	base

	hmu     sync.Mutex
	headers []string // encabezados reales detectados (cacheados por instancia)
	imgHdr  string   // nombre exacto de la columna imagen; "" si la hoja no la tiene
}

// NewProductoRepository construye el repositorio.
func NewProductoRepository(c *Client) *ProductoRepository {
	return &ProductoRepository{base: newBase(c.api)}
}

func detectImgHeader(headers []string) string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, alias := range productoImgAliases {
		if present[alias] {
			return alias
		}
	}
	return ""
}

func colIndex(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

// loadHeaders lee los encabezados reales de la hoja; si la hoja no existe la
// bootstrapea con las columnas base más RecID_imagen.
func (r *ProductoRepository) loadHeaders(ctx context.Context) ([]string, string, error) {
	r.hmu.Lock()
	if r.headers != nil {
		h, img := r.headers, r.imgHdr
		r.hmu.Unlock()
		return h, img, nil
	}
	r.hmu.Unlock()

	headers, err := r.readHeaders(ctx, productoTab)
	if err != nil {
		headers = nil
	}
	var imgHdr string
	if len(headers) > 0 {
		imgHdr = detectImgHeader(headers)
		if err := r.ensureTabAndHeaders(ctx, productoTab, headers); err != nil {
			return nil, "", err
		}
	} else {
		headers = append(append([]string{}, productoHeadersBase...), productoDefaultImgHeader)
		imgHdr = productoDefaultImgHeader
		if err := r.ensureTabAndHeaders(ctx, productoTab, headers); err != nil {
			return nil, "", err
		}
	}

	r.hmu.Lock()
	r.headers, r.imgHdr = headers, imgHdr
	r.hmu.Unlock()
	return headers, imgHdr, nil
}

func (r *ProductoRepository) fromRow(headers []string, imgHdr string, row []string) *entity.Producto {
	get := func(col string) string {
		if i := colIndex(headers, col); i >= 0 {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	p := &entity.Producto{
		RecID:       get("RecID"),
		Codigo:      get("codigo_producto"),
		Nombre:      get("nombre_producto"),
		Descripcion: get("descripcion_producto"),
	}
	if imgHdr != "" {
		p.RecIDImagen = get(imgHdr)
	}
	return p
}

// List devuelve todos los productos no vacíos, con la columna de imagen normalizada.
func (r *ProductoRepository) List(ctx context.Context) ([]*entity.Producto, error) {
	headers, imgHdr, err := r.loadHeaders(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := r.api.Get(ctx, dataRange(productoTab, len(headers)))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Producto, 0, len(rows))
	for _, raw := range rows {
		row := padRow(raw, len(headers))
		p := r.fromRow(headers, imgHdr, row)
		if p.RecID == "" && p.Codigo == "" && p.Nombre == "" && p.Descripcion == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetByRecID devuelve (nil, nil) cuando la fila no existe.
func (r *ProductoRepository) GetByRecID(ctx context.Context, recid string) (*entity.Producto, error) {
	headers, imgHdr, err := r.loadHeaders(ctx)
	if err != nil {
		return nil, err
	}
	recid = strings.TrimSpace(recid)
	if recid == "" {
		return nil, nil
	}
	recidCol := colIndex(headers, "RecID")
	if recidCol < 0 {
		return nil, nil
	}
	row, err := r.findRowByColValue(ctx, productoTab, recidCol+1, recid)
	if err != nil {
		return nil, err
	}
	if row == 0 {
		return nil, nil
	}
	cur, err := r.readRow(ctx, productoTab, len(headers), row)
	if err != nil {
		return nil, err
	}
	return r.fromRow(headers, imgHdr, cur), nil
}

// Add agrega una fila nueva respetando el orden real de columnas. Si la hoja
// no tiene columna de imagen, RecIDImagen se ignora.
func (r *ProductoRepository) Add(ctx context.Context, p *entity.Producto) error {
	headers, imgHdr, err := r.loadHeaders(ctx)
	if err != nil {
		return err
	}
	row := make([]string, len(headers))
	set := func(col, val string) {
		if i := colIndex(headers, col); i >= 0 {
			row[i] = val
		}
	}
	set("RecID", p.RecID)
	set("codigo_producto", strings.TrimSpace(p.Codigo))
	set("nombre_producto", strings.TrimSpace(p.Nombre))
	set("descripcion_producto", strings.TrimSpace(p.Descripcion))
	if imgHdr != "" && p.RecIDImagen != "" {
		set(imgHdr, strings.TrimSpace(p.RecIDImagen))
	}
	return r.appendRow(ctx, productoTab, row)
}

// Update sobreescribe las columnas conocidas de la fila; columnas ajenas al
// esquema quedan como estaban. Devuelve false si el RecID no existe.
func (r *ProductoRepository) Update(ctx context.Context, p *entity.Producto) (bool, error) {
	headers, imgHdr, err := r.loadHeaders(ctx)
	if err != nil {
		return false, err
	}
	recid := strings.TrimSpace(p.RecID)
	if recid == "" {
		return false, nil
	}
	recidCol := colIndex(headers, "RecID")
	if recidCol < 0 {
		return false, nil
	}
	row, err := r.findRowByColValue(ctx, productoTab, recidCol+1, recid)
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	cur, err := r.readRow(ctx, productoTab, len(headers), row)
	if err != nil {
		return false, err
	}
	set := func(col, val string) {
		if i := colIndex(headers, col); i >= 0 {
			cur[i] = val
		}
	}
	set("data_ini_prox", "")
	set("codigo_producto", p.Codigo)
	set("nombre_producto", p.Nombre)
	set("descripcion_producto", p.Descripcion)
	if imgHdr != "" {
		set(imgHdr, p.RecIDImagen)
	}
	if err := r.writeRow(ctx, productoTab, len(headers), row, cur); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteByRecID limpia el rango de la fila.
func (r *ProductoRepository) DeleteByRecID(ctx context.Context, recid string) (bool, error) {
	headers, _, err := r.loadHeaders(ctx)
	if err != nil {
		return false, err
	}
	recidCol := colIndex(headers, "RecID")
	if recidCol < 0 {
		return false, nil
	}
	row, err := r.findRowByColValue(ctx, productoTab, recidCol+1, strings.TrimSpace(recid))
	if err != nil {
		return false, err
	}
	if row == 0 {
		return false, nil
	}
	if err := r.clearRow(ctx, productoTab, len(headers), row); err != nil {
		return false, err
	}
	return true, nil
}
