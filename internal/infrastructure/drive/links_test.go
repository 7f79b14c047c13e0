package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDriveID(t *testing.T) {
	cases := map[string]string{
		"https://drive.google.com/file/d/1AbC_x-9/view":              "1AbC_x-9",
		"https://drive.google.com/file/d/1AbC_x-9/view?usp=sharing":  "1AbC_x-9",
		"https://drive.google.com/uc?export=download&id=1AbC_x-9":    "1AbC_x-9",
		"https://drive.google.com/open?id=zz_99-aa":                  "zz_99-aa",
		"https://example.com/no-es-drive":                            "",
		"":                                                           "",
	}
	for link, want := range cases {
		assert.Equal(t, want, ExtractDriveID(link), "link %q", link)
	}
}

func TestViewLinkYDownloadURL(t *testing.T) {
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view", ViewLink("abc123"))
	assert.Equal(t, "https://drive.google.com/uc?export=download&id=abc123", DownloadURL("abc123"))

	// Ida y vuelta: los enlaces que armamos se pueden volver a parsear.
	assert.Equal(t, "abc123", ExtractDriveID(ViewLink("abc123")))
	assert.Equal(t, "abc123", ExtractDriveID(DownloadURL("abc123")))
}
