package usecase

import (
	"context"
	"time"

	cachelib "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	gocache_store "github.com/eko/gocache/store/go_cache/v4"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// Claves del caché de referencia.
const (
	cacheKeyBrands     = "reference:brands"
	cacheKeyLocations  = "reference:locations"
	cacheKeyCurrencies = "reference:currencies"
)

// ReferenceUseCase listas de datos de referencia (marcas, ubicaciones,
// monedas) con caché en memoria de vida corta. Un miss o un fallo del caché
// degradan a la consulta directa, nunca a error.
type ReferenceUseCase struct {
	catalogRepo  repository.CatalogRepository
	locationRepo repository.LocationRepository

	brandCache    cachelib.CacheInterface[[]dto.BrandResponse]
	locationCache cachelib.CacheInterface[[]dto.LocationResponse]
	currencyCache cachelib.CacheInterface[[]dto.CurrencyResponse]
}

// NewReferenceUseCase construye el caso de uso con un caché go-cache
// compartido detrás de gocache (mismo patrón memoria-primero en toda la app).
func NewReferenceUseCase(catalogRepo repository.CatalogRepository, locationRepo repository.LocationRepository, ttl, cleanupInterval time.Duration) *ReferenceUseCase {
	client := gocache.New(ttl, cleanupInterval)
	newStore := func() *gocache_store.GoCacheStore {
		return gocache_store.NewGoCache(client, store.WithExpiration(ttl))
	}
	return &ReferenceUseCase{
		catalogRepo:   catalogRepo,
		locationRepo:  locationRepo,
		brandCache:    cachelib.New[[]dto.BrandResponse](newStore()),
		locationCache: cachelib.New[[]dto.LocationResponse](newStore()),
		currencyCache: cachelib.New[[]dto.CurrencyResponse](newStore()),
	}
}

// ListBrands devuelve el catálogo de marcas (cacheado).
func (uc *ReferenceUseCase) ListBrands(ctx context.Context) ([]dto.BrandResponse, error) {
	if cached, err := uc.brandCache.Get(ctx, cacheKeyBrands); err == nil && cached != nil {
		return cached, nil
	}
	list, err := uc.catalogRepo.ListBrands()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BrandResponse{ID: b.ID, Name: b.Name})
	}
	_ = uc.brandCache.Set(ctx, cacheKeyBrands, items)
	return items, nil
}

// ListLocations devuelve las ubicaciones (cacheado).
func (uc *ReferenceUseCase) ListLocations(ctx context.Context) ([]dto.LocationResponse, error) {
	if cached, err := uc.locationCache.Get(ctx, cacheKeyLocations); err == nil && cached != nil {
		return cached, nil
	}
	list, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.LocationResponse{ID: l.ID, Name: l.Name, Country: l.Country, Timezone: l.Timezone})
	}
	_ = uc.locationCache.Set(ctx, cacheKeyLocations, items)
	return items, nil
}

// ListCurrencies devuelve las monedas soportadas (cacheado).
func (uc *ReferenceUseCase) ListCurrencies(ctx context.Context) ([]dto.CurrencyResponse, error) {
	if cached, err := uc.currencyCache.Get(ctx, cacheKeyCurrencies); err == nil && cached != nil {
		return cached, nil
	}
	list, err := uc.catalogRepo.ListCurrencies()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CurrencyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CurrencyResponse{ID: c.ID, Code: c.Code, Name: c.Name, Symbol: c.Symbol})
	}
	_ = uc.currencyCache.Set(ctx, cacheKeyCurrencies, items)
	return items, nil
}

// CreateLocation da de alta una ubicación (solo admin) e invalida el caché.
func (uc *ReferenceUseCase) CreateLocation(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Country:   in.Country,
		Timezone:  in.Timezone,
		CreatedAt: time.Now(),
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	_ = uc.locationCache.Delete(ctx, cacheKeyLocations)
	return &dto.LocationResponse{ID: location.ID, Name: location.Name, Country: location.Country, Timezone: location.Timezone}, nil
}
