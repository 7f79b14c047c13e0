package imagecache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	fetchTimeout = 25 * time.Second
	userAgent    = "gestor-api/1.0"
)

// HTTPFetcher devuelve un Fetcher que descarga por HTTP con timeout y un
// User-Agent propio (Drive rechaza algunas descargas sin UA).
func HTTPFetcher(client *http.Client) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return func(ctx context.Context, link string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
		if err != nil {
			return nil, fmt.Errorf("armar request de imagen: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("descargar imagen: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("descargar imagen: estado %d", resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("leer imagen: %w", err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("descargar imagen: respuesta vacía")
		}
		return data, nil
	}
}

// sniffMIME detecta el tipo por los bytes mágicos. Ante la duda, JPEG: es lo
// que guarda el gestor.
func sniffMIME(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "image/png"
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif"
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
