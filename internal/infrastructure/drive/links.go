package drive

import (
	"fmt"
	"regexp"
)

var (
	reFileD  = regexp.MustCompile(`/file/d/([^/]+)`)
	reIDPara = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
)

// ExtractDriveID saca el ID de archivo de cualquiera de las dos formas de
// enlace de Drive (/file/d/<id>/view o ?id=<id>). Devuelve "" si el texto no
// es un enlace reconocible.
func ExtractDriveID(link string) string {
	if m := reFileD.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	if m := reIDPara.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	return ""
}

// ViewLink arma el enlace de vista de un archivo.
func ViewLink(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view", fileID)
}

// DownloadURL arma el enlace de descarga directa de un archivo.
func DownloadURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?export=download&id=%s", fileID)
}
