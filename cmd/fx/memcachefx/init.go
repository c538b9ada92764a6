package memcachefx

import (
	"go.uber.org/fx"

	"wayfarer/pkg/memcache"
)

var Module = fx.Provide(
	providePayloadCache)

func providePayloadCache() *memcache.PayloadCache {
	return memcache.NewPayloadCache()
}
