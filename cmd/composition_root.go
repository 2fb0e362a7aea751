package cmd

import (
	"fmt"
	"time"

	"delivery-tracking/internal/adapters/out/maps"
	"delivery-tracking/internal/adapters/out/postgres"
	"delivery-tracking/internal/core/application/usecases/commands"
	"delivery-tracking/internal/core/application/usecases/queries"
	"delivery-tracking/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// defaultEtaCacheTTL bounds how long a cached route estimate stays fresh when
// ETA_CACHE_TTL is not configured.
const defaultEtaCacheTTL = 5 * time.Minute

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	etaProvider ports.ETAProvider
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	etaProvider, err := buildETAProvider(configs)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to build eta provider: %w", err)
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		etaProvider: etaProvider,
	}, nil
}

// buildETAProvider creates the routing service client and, when a Redis
// address is configured, wraps it with the estimate cache.
func buildETAProvider(configs Config) (ports.ETAProvider, error) {
	timeout := maps.DefaultTimeout
	if configs.MapsTimeout != "" {
		parsed, err := time.ParseDuration(configs.MapsTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid MAPS_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	client, err := maps.NewClient(configs.MapsBaseURL, timeout)
	if err != nil {
		return nil, err
	}

	if configs.RedisAddr == "" {
		return client, nil
	}

	ttl := defaultEtaCacheTTL
	if configs.EtaCacheTTL != "" {
		parsed, err := time.ParseDuration(configs.EtaCacheTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid ETA_CACHE_TTL: %w", err)
		}
		ttl = parsed
	}

	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	return maps.NewCachedETAProvider(client, redisClient, ttl), nil
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.etaProvider)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateRateDeliveryCommandHandler() commands.RateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryByIDQueryHandler() queries.GetDeliveryByIDQueryHandler {
	return queries.NewGetDeliveryByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryByOrderIDQueryHandler() queries.GetDeliveryByOrderIDQueryHandler {
	return queries.NewGetDeliveryByOrderIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByDriverIDQueryHandler() queries.GetDeliveriesByDriverIDQueryHandler {
	return queries.NewGetDeliveriesByDriverIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
