// Package events implementa un bus de eventos en proceso para notificar
// refrescos entre módulos (stock, productos, depósitos, usuarios).
// La entrega es best-effort: un suscriptor que entra en pánico no afecta al resto.
package events

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Tópicos publicados por los casos de uso.
const (
	TopicStockRefresh    = "stock:refresh"
	TopicProductoRefresh = "producto:refresh"
	TopicDepositoRefresh = "deposito:refresh"
	TopicUsuarioRefresh  = "usuario:refresh"
)

// Handler recibe el payload del evento (puede ser nil).
type Handler func(data any)

// Bus lista de callbacks por tópico. Seguro para uso concurrente.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
}

// New crea un bus vacío.
func New() *Bus {
	return &Bus{subs: make(map[string][]Handler)}
}

// Subscribe registra fn para topic. fn nil se ignora.
func (b *Bus) Subscribe(topic string, fn Handler) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], fn)
}

// Publish entrega data a todos los suscriptores del tópico, en orden de alta.
// Los pánicos de los suscriptores se recuperan y quedan en el log.
func (b *Bus) Publish(topic string, data any) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subs[topic]))
	copy(handlers, b.subs[topic])
	b.mu.RUnlock()

	for _, fn := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Warn().Str("topic", topic).Interface("panic", r).Msg("suscriptor del bus falló")
				}
			}()
			fn(data)
		}()
	}
}
