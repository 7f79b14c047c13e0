package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish_EntregaEnOrdenDeAlta(t *testing.T) {
	bus := New()
	var got []string
	bus.Subscribe(TopicStockRefresh, func(data any) { got = append(got, "a:"+data.(string)) })
	bus.Subscribe(TopicStockRefresh, func(data any) { got = append(got, "b:"+data.(string)) })

	bus.Publish(TopicStockRefresh, "s1")

	assert.Equal(t, []string{"a:s1", "b:s1"}, got)
}

func TestPublish_TopicoSinSuscriptores(t *testing.T) {
	bus := New()
	assert.NotPanics(t, func() { bus.Publish(TopicProductoRefresh, nil) })
}

func TestPublish_RecuperaPanicosDeSuscriptores(t *testing.T) {
	bus := New()
	var entregados int
	bus.Subscribe(TopicUsuarioRefresh, func(any) { panic("boom") })
	bus.Subscribe(TopicUsuarioRefresh, func(any) { entregados++ })

	assert.NotPanics(t, func() { bus.Publish(TopicUsuarioRefresh, nil) })
	assert.Equal(t, 1, entregados, "el pánico de un suscriptor no corta la entrega al resto")
}

func TestSubscribe_IgnoraHandlerNil(t *testing.T) {
	bus := New()
	bus.Subscribe(TopicDepositoRefresh, nil)
	assert.NotPanics(t, func() { bus.Publish(TopicDepositoRefresh, nil) })
}
