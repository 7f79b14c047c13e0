package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	JWT    JWTConfig
	Google GoogleConfig
	Cache  CacheConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración del token de sesión propio (emitido tras el login con Google).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// GoogleConfig credenciales y recursos de Google (Sheets + Drive + OAuth).
// CredentialsJSON tiene prioridad sobre CredentialsFile para los servicios de API;
// el flujo OAuth usa ClientID/ClientSecret/RedirectURL.
type GoogleConfig struct {
	CredentialsJSON string // contenido JSON de la cuenta de servicio (opcional)
	CredentialsFile string // ruta a un archivo de credenciales (opcional)
	ClientID        string
	ClientSecret    string
	RedirectURL     string
	SpreadsheetID   string // spreadsheet activo del gestor
	IndexSheetID    string // spreadsheet índice (indexSheetList); vacío = se resuelve/crea en Drive
	RootFolder      string // carpeta raíz en Drive
	ImageFolder     string // subcarpeta de imágenes (pública con enlace)
}

// CacheConfig configuración del cache de imágenes (memoria + disco).
type CacheConfig struct {
	Dir        string
	TTLSeconds int
	MaxItems   int
	MaxFetches int // límite de descargas concurrentes al origen
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET,
// GOOGLE_CLIENT_ID, GESTOR_SPREADSHEET_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gestor-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "gestor-api"),
		},
		Google: GoogleConfig{
			CredentialsJSON: getString(v, "GOOGLE_CREDENTIALS_JSON", ""),
			CredentialsFile: getString(v, "GOOGLE_CREDENTIALS_FILE", ""),
			ClientID:        getString(v, "GOOGLE_CLIENT_ID", ""),
			ClientSecret:    getString(v, "GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:     getString(v, "GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/callback"),
			SpreadsheetID:   getString(v, "GESTOR_SPREADSHEET_ID", ""),
			IndexSheetID:    getString(v, "GESTOR_INDEX_SHEET_ID", ""),
			RootFolder:      getString(v, "GESTOR_ROOT_FOLDER", "TacticaGestorSheet"),
			ImageFolder:     getString(v, "GESTOR_IMAGE_FOLDER", "GestorImagen"),
		},
		Cache: CacheConfig{
			Dir:        getString(v, "IMAGE_CACHE_DIR", "images_cache"),
			TTLSeconds: getInt(v, "IMAGE_CACHE_TTL_SECONDS", 3600),
			MaxItems:   getInt(v, "IMAGE_CACHE_MAX_ITEMS", 1000),
			MaxFetches: getInt(v, "IMAGE_CACHE_MAX_FETCHES", 4),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
