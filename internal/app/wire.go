//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	routingGateway "marketplace/internal/gateway/routing"
	"marketplace/internal/handlers/rest/job_cancel_post"
	"marketplace/internal/handlers/rest/job_get"
	"marketplace/internal/handlers/rest/job_offers_get"
	"marketplace/internal/handlers/rest/job_post"
	"marketplace/internal/handlers/rest/job_status_post"
	"marketplace/internal/handlers/rest/offer_accept_post"
	"marketplace/internal/handlers/rest/offer_post"
	"marketplace/internal/handlers/rest/provider_location_post"
	"marketplace/internal/handlers/tasks/offer_expiry"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/offer_deadline"
	"marketplace/internal/pkg/factory/restaurant_handle"
	"marketplace/internal/pkg/kafka"

	jobRepo "marketplace/internal/repository/job"
	offerRepo "marketplace/internal/repository/offer"
	supplyRepo "marketplace/internal/repository/supply"
	dispatchService "marketplace/internal/service/dispatch"
	"marketplace/internal/service/fanout"
	lifecycleService "marketplace/internal/service/lifecycle"
	negotiationService "marketplace/internal/service/negotiation"
	pricingService "marketplace/internal/service/pricing"
	restaurantService "marketplace/internal/service/restaurant"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type (
	ExpiryInterval time.Duration
)

type Application struct {
	ServiceDispatch   ServiceDispatch
	EventHub          *fanout.Hub
	BackgroundWorkers *background.Worker
}

type ServiceDispatch interface {
	job_post.Service
	job_get.Service
	job_offers_get.Service
	offer_post.Service
	offer_accept_post.Service
	job_status_post.Service
	job_cancel_post.Service
	provider_location_post.Service
}

// InitializeApplication assembles the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideExpiryInterval,
		provideRateTable,

		provideJobRepository,
		provideOfferRepository,
		provideSupplyRepository,
		provideRoutingGateway,

		providePricingService,
		provideLifecycleService,
		provideNegotiationService,
		provideDispatchService,
		offer_deadline.New,

		fanout.NewHub,
		provideEventSink,

		provideOfferExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),

		wire.Bind(new(dispatchService.JobRepository), new(*jobRepo.Repository)),
		wire.Bind(new(dispatchService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(dispatchService.SupplyRepository), new(*supplyRepo.Repository)),
		wire.Bind(new(dispatchService.RoutingGateway), new(*routingGateway.Gateway)),
		wire.Bind(new(dispatchService.PricingService), new(*pricingService.Service)),
		wire.Bind(new(dispatchService.NegotiationService), new(*negotiationService.Negotiation)),
		wire.Bind(new(dispatchService.LifecycleService), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(dispatchService.EventSink), new(*fanout.Sink)),

		wire.Bind(new(negotiationService.JobRepository), new(*jobRepo.Repository)),
		wire.Bind(new(negotiationService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(negotiationService.DeadlineFactory), new(*offer_deadline.OfferDeadlineFactory)),
		wire.Bind(new(lifecycleService.JobRepository), new(*jobRepo.Repository)),

		wire.Bind(new(negotiationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(fanout.Producer), new(*kafka.Producer)),

		wire.Bind(new(offer_expiry.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	RestaurantService *restaurantService.Service
}

// InitializeKafkaWorkerApp assembles the restaurant status consumer
// (cmd/worker-restaurant-status).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRateTable,

		provideJobRepository,
		provideOfferRepository,
		provideSupplyRepository,
		provideRoutingGateway,

		providePricingService,
		provideLifecycleService,
		provideNegotiationService,
		provideDispatchService,
		offer_deadline.New,

		fanout.NewHub,
		provideEventSink,

		provideStatusHandlerFactory,
		provideRestaurantService,

		wire.Bind(new(dispatchService.JobRepository), new(*jobRepo.Repository)),
		wire.Bind(new(dispatchService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(dispatchService.SupplyRepository), new(*supplyRepo.Repository)),
		wire.Bind(new(dispatchService.RoutingGateway), new(*routingGateway.Gateway)),
		wire.Bind(new(dispatchService.PricingService), new(*pricingService.Service)),
		wire.Bind(new(dispatchService.NegotiationService), new(*negotiationService.Negotiation)),
		wire.Bind(new(dispatchService.LifecycleService), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(dispatchService.EventSink), new(*fanout.Sink)),

		wire.Bind(new(negotiationService.JobRepository), new(*jobRepo.Repository)),
		wire.Bind(new(negotiationService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(negotiationService.DeadlineFactory), new(*offer_deadline.OfferDeadlineFactory)),
		wire.Bind(new(lifecycleService.JobRepository), new(*jobRepo.Repository)),

		wire.Bind(new(negotiationService.TxManager), new(*tx.Manager)),
		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(fanout.Producer), new(*kafka.Producer)),

		wire.Bind(new(restaurantService.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(restaurantService.HandlerFactory), new(*restaurant_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideJobRepository(querier *querier.Querier) *jobRepo.Repository {
	return jobRepo.New(querier)
}

func provideOfferRepository(querier *querier.Querier) *offerRepo.Repository {
	return offerRepo.New(querier)
}

func provideSupplyRepository(client *goredis.Client) *supplyRepo.Repository {
	return supplyRepo.New(client)
}

func provideRoutingGateway(log logger.Logger, cfg *config.Config) *routingGateway.Gateway {
	return routingGateway.New(log, &cfg.Routing)
}

func provideRateTable(cfg *config.Config) (config.RateTable, error) {
	return config.LoadRates(cfg.Pricing.RatesPath)
}

func providePricingService(rates config.RateTable) *pricingService.Service {
	return pricingService.New(rates)
}

func provideLifecycleService(
	jobs lifecycleService.JobRepository,
	txManager lifecycleService.TxManager,
) *lifecycleService.Lifecycle {
	return lifecycleService.New(jobs, txManager)
}

func provideNegotiationService(
	jobs negotiationService.JobRepository,
	offers negotiationService.OfferRepository,
	deadlineFactory negotiationService.DeadlineFactory,
	txManager negotiationService.TxManager,
) *negotiationService.Negotiation {
	return negotiationService.New(jobs, offers, deadlineFactory, txManager)
}

func provideEventSink(log logger.Logger, hub *fanout.Hub, producer fanout.Producer) *fanout.Sink {
	return fanout.NewSink(log, hub, producer)
}

func provideDispatchService(
	log logger.Logger,
	jobs dispatchService.JobRepository,
	offers dispatchService.OfferRepository,
	supply dispatchService.SupplyRepository,
	routing dispatchService.RoutingGateway,
	pricing dispatchService.PricingService,
	negotiation dispatchService.NegotiationService,
	lifecycle dispatchService.LifecycleService,
	sink dispatchService.EventSink,
) *dispatchService.Dispatch {
	return dispatchService.New(log, jobs, offers, supply, routing, pricing, negotiation, lifecycle, sink)
}

func provideStatusHandlerFactory(dispatch *dispatchService.Dispatch) *restaurant_handle.StatusHandlerFactory {
	return restaurant_handle.NewStatusHandlerFactory(dispatch)
}

func provideRestaurantService(factory restaurantService.HandlerFactory) *restaurantService.Service {
	return restaurantService.New(factory)
}

func provideExpiryInterval(cfg *config.Config) ExpiryInterval {
	return ExpiryInterval(cfg.Tasks.OfferExpiryInterval)
}

func provideOfferExpiryTask(
	log logger.Logger,
	dispatch offer_expiry.Service,
	interval ExpiryInterval,
) *offer_expiry.OfferExpiry {
	return offer_expiry.NewOfferExpiry(log, dispatch, time.Duration(interval))
}

func provideTaskList(
	offerExpiryTask *offer_expiry.OfferExpiry,
) []background.Task {
	return []background.Task{
		offerExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
