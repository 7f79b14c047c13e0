// Package imagecache implementa la caché de imágenes en dos niveles: memoria
// (TTL + tope LRU) y disco (archivos por hash del RecID). Las búsquedas
// concurrentes del mismo RecID se colapsan en un solo fetch y los fallos
// también se cachean para no martillar el origen.
package imagecache

import (
	"container/list"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/tacticadev/gestor-api/pkg/logger"
)

// Resolver traduce un RecID de imagen a un enlace descargable.
type Resolver func(ctx context.Context, recid string) (link string, err error)

// Fetcher descarga los bytes de un enlace.
type Fetcher func(ctx context.Context, link string) ([]byte, error)

type entry struct {
	data []byte
	mime string
	err  error
	at   time.Time
	elem *list.Element
}

// Cache es la caché de imágenes. Seguro para uso concurrente.
type Cache struct {
	dir      string
	ttl      time.Duration
	maxItems int

	resolver Resolver
	fetcher  Fetcher
	log      *logger.Logger

	group singleflight.Group
	sem   *semaphore.Weighted

	mu    sync.Mutex
	mem   map[string]*entry
	order *list.List // frente = más reciente

	now func() time.Time
}

// Options parametriza la caché; los ceros toman los valores por defecto.
type Options struct {
	Dir        string
	TTL        time.Duration
	MaxItems   int
	MaxFetches int64
}

// New construye la caché. El directorio se crea si no existe.
func New(opts Options, resolver Resolver, fetcher Fetcher, log *logger.Logger) (*Cache, error) {
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = 1000
	}
	if opts.MaxFetches <= 0 {
		opts.MaxFetches = 4
	}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de caché: %w", err)
		}
	}
	return &Cache{
		dir:      opts.Dir,
		ttl:      opts.TTL,
		maxItems: opts.MaxItems,
		resolver: resolver,
		fetcher:  fetcher,
		log:      log,
		sem:      semaphore.NewWeighted(opts.MaxFetches),
		mem:      make(map[string]*entry),
		order:    list.New(),
		now:      time.Now,
	}, nil
}

// diskPath es el archivo en disco para el RecID (hash para no confiar en el
// RecID como nombre de archivo).
func (c *Cache) diskPath(recid string) string {
	sum := sha1.Sum([]byte(recid))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".jpg")
}

// Get devuelve los bytes y el MIME de la imagen del RecID. Orden de búsqueda:
// memoria, disco, origen. Un fallo del origen queda cacheado en memoria hasta
// que venza el TTL.
func (c *Cache) Get(ctx context.Context, recid string) ([]byte, string, error) {
	if data, mime, err, ok := c.fromMem(recid); ok {
		return data, mime, err
	}

	v, err, _ := c.group.Do(recid, func() (interface{}, error) {
		// Releer: otro vuelo pudo llenar la entrada mientras esperábamos.
		if data, mime, err, ok := c.fromMem(recid); ok {
			return &entry{data: data, mime: mime, err: err}, nil
		}

		if c.dir != "" {
			if data, err := os.ReadFile(c.diskPath(recid)); err == nil && len(data) > 0 {
				mime := sniffMIME(data)
				c.store(recid, data, mime, nil)
				return &entry{data: data, mime: mime}, nil
			}
		}

		data, mime, ferr := c.fetch(ctx, recid)
		c.store(recid, data, mime, ferr)
		if ferr == nil && c.dir != "" {
			if werr := os.WriteFile(c.diskPath(recid), data, 0o644); werr != nil {
				c.log.Warn().Err(werr).Str("recid", recid).Msg("no se pudo persistir la imagen en disco")
			}
		}
		return &entry{data: data, mime: mime, err: ferr}, nil
	})
	if err != nil {
		return nil, "", err
	}
	e := v.(*entry)
	return e.data, e.mime, e.err
}

func (c *Cache) fetch(ctx context.Context, recid string) ([]byte, string, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, "", err
	}
	defer c.sem.Release(1)

	link, err := c.resolver(ctx, recid)
	if err != nil {
		return nil, "", err
	}
	data, err := c.fetcher(ctx, link)
	if err != nil {
		return nil, "", err
	}
	return data, sniffMIME(data), nil
}

// fromMem consulta la memoria; ok=false si no hay entrada vigente.
func (c *Cache) fromMem(recid string) (data []byte, mime string, err error, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.mem[recid]
	if !found {
		return nil, "", nil, false
	}
	if c.now().Sub(e.at) > c.ttl {
		c.order.Remove(e.elem)
		delete(c.mem, recid)
		return nil, "", nil, false
	}
	c.order.MoveToFront(e.elem)
	return e.data, e.mime, e.err, true
}

// store escribe la entrada (éxito o fallo) y recorta por LRU si hace falta.
func (c *Cache) store(recid string, data []byte, mime string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, found := c.mem[recid]; found {
		c.order.Remove(old.elem)
	}
	e := &entry{data: data, mime: mime, err: err, at: c.now()}
	e.elem = c.order.PushFront(recid)
	c.mem[recid] = e
	for len(c.mem) > c.maxItems {
		back := c.order.Back()
		if back == nil {
			break
		}
		c.order.Remove(back)
		delete(c.mem, back.Value.(string))
	}
}

// Invalidate descarta la entrada en memoria y el archivo en disco del RecID.
func (c *Cache) Invalidate(recid string) {
	c.mu.Lock()
	if e, found := c.mem[recid]; found {
		c.order.Remove(e.elem)
		delete(c.mem, recid)
	}
	c.mu.Unlock()
	if c.dir != "" {
		_ = os.Remove(c.diskPath(recid))
	}
}

// Len devuelve la cantidad de entradas en memoria.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.mem)
}
