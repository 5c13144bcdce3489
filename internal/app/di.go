package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	slackapi "github.com/slack-go/slack"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	slackclient "github.com/bryanrg22/CalTech-Hacks/internal/client/slack"
	"github.com/bryanrg22/CalTech-Hacks/internal/closer"
	"github.com/bryanrg22/CalTech-Hacks/internal/config"
	docrepo "github.com/bryanrg22/CalTech-Hacks/internal/repository/document"
	orderrepo "github.com/bryanrg22/CalTech-Hacks/internal/repository/order"
	partrepo "github.com/bryanrg22/CalTech-Hacks/internal/repository/part"
	salerepo "github.com/bryanrg22/CalTech-Hacks/internal/repository/sale"
	specrepo "github.com/bryanrg22/CalTech-Hacks/internal/repository/spec"
	supplyrepo "github.com/bryanrg22/CalTech-Hacks/internal/repository/supply"
	aggsvc "github.com/bryanrg22/CalTech-Hacks/internal/service/aggregator"
	anlsvc "github.com/bryanrg22/CalTech-Hacks/internal/service/analytics"
	impsvc "github.com/bryanrg22/CalTech-Hacks/internal/service/importer"
	ntfsvc "github.com/bryanrg22/CalTech-Hacks/internal/service/notifier"
	ordsvc "github.com/bryanrg22/CalTech-Hacks/internal/service/orders"
	tanl "github.com/bryanrg22/CalTech-Hacks/internal/transport/http/analytics"
	tdoc "github.com/bryanrg22/CalTech-Hacks/internal/transport/http/document"
	timp "github.com/bryanrg22/CalTech-Hacks/internal/transport/http/importer"
	tord "github.com/bryanrg22/CalTech-Hacks/internal/transport/http/orders"
)

type PartRepository interface {
	impsvc.PartRepository
	anlsvc.PartRepository
}

type OrderRepository interface {
	impsvc.OrderRepository
	ordsvc.OrderRepository
}

type DocumentHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
	Patch(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ImportHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Deliver(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandler interface {
	Suppliers(w http.ResponseWriter, r *http.Request)
	LowStock(w http.ResponseWriter, r *http.Request)
	Routes(w http.ResponseWriter, r *http.Request)
}

type di struct {
	mongo    *mongo.Client
	database *mongo.Database

	documentRepo tdoc.DocumentRepository
	partRepo     PartRepository
	orderRepo    OrderRepository
	saleRepo     impsvc.SaleRepository
	supplyRepo   anlsvc.SupplyRepository
	counters     aggsvc.CounterStore

	sender     ntfsvc.MessageSender
	notifier   impsvc.LowStockNotifier
	aggregator impsvc.Aggregator

	importService    timp.ImportService
	orderService     tord.OrderService
	analyticsService tanl.AnalyticsService

	documentHandler  DocumentHandler
	importHandler    ImportHandler
	orderHandler     OrderHandler
	analyticsHandler AnalyticsHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) Database(ctx context.Context) *mongo.Database {
	if d.database == nil {
		d.database = d.MongoDB(ctx).Database(config.C().Mongo.DatabaseName())
	}

	return d.database
}

func (d *di) PartsCollection(ctx context.Context) *mongo.Collection {
	coll := d.Database(ctx).Collection(config.C().Mongo.PartsCollection())

	if err := ensurePartIndexes(ctx, coll); err != nil {
		panic(fmt.Sprintf("failed to ensure part indexes: %v\n", err))
	}

	return coll
}

func (d *di) DocumentRepository(ctx context.Context) tdoc.DocumentRepository {
	if d.documentRepo == nil {
		d.documentRepo = docrepo.NewDocumentRepository(d.Database(ctx))
	}

	return d.documentRepo
}

func (d *di) PartRepository(ctx context.Context) PartRepository {
	if d.partRepo == nil {
		d.partRepo = partrepo.NewPartRepository(d.PartsCollection(ctx))
	}

	return d.partRepo
}

func (d *di) OrderRepository(ctx context.Context) OrderRepository {
	if d.orderRepo == nil {
		d.orderRepo = orderrepo.NewOrderRepository(
			d.Database(ctx).Collection(config.C().Mongo.OrdersCollection()),
		)
	}

	return d.orderRepo
}

func (d *di) SaleRepository(ctx context.Context) impsvc.SaleRepository {
	if d.saleRepo == nil {
		d.saleRepo = salerepo.NewSaleRepository(
			d.Database(ctx).Collection(config.C().Mongo.SalesCollection()),
		)
	}

	return d.saleRepo
}

func (d *di) SupplyRepository(ctx context.Context) anlsvc.SupplyRepository {
	if d.supplyRepo == nil {
		d.supplyRepo = supplyrepo.NewSupplyRepository(
			d.Database(ctx).Collection(config.C().Mongo.SupplyCollection()),
		)
	}

	return d.supplyRepo
}

func (d *di) CounterStore(ctx context.Context) aggsvc.CounterStore {
	if d.counters == nil {
		d.counters = specrepo.NewCounterRepository(
			d.Database(ctx).Collection(config.C().Mongo.SpecsCollection()),
		)
	}

	return d.counters
}

func (d *di) MessageSender(ctx context.Context) ntfsvc.MessageSender {
	if d.sender == nil {
		cfg := config.C()

		if cfg.Slack.Enabled() {
			d.sender = slackclient.NewClient(slackapi.New(cfg.Slack.Token()))
		} else {
			d.sender = slackclient.NewNopSender()
		}
	}

	return d.sender
}

func (d *di) LowStockNotifier(ctx context.Context) impsvc.LowStockNotifier {
	if d.notifier == nil {
		d.notifier = ntfsvc.NewNotifierService(
			d.MessageSender(ctx),
			config.C().Slack.Channel(),
		)
	}

	return d.notifier
}

func (d *di) Aggregator(ctx context.Context) impsvc.Aggregator {
	if d.aggregator == nil {
		d.aggregator = aggsvc.NewAggregatorService(
			d.CounterStore(ctx),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.aggregator
}

func (d *di) ImportService(ctx context.Context) timp.ImportService {
	if d.importService == nil {
		d.importService = impsvc.NewImporterService(
			d.PartRepository(ctx),
			d.OrderRepository(ctx),
			d.SaleRepository(ctx),
			d.Aggregator(ctx),
			d.LowStockNotifier(ctx),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.importService
}

func (d *di) OrderService(ctx context.Context) tord.OrderService {
	if d.orderService == nil {
		d.orderService = ordsvc.NewOrderService(
			d.OrderRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.orderService
}

func (d *di) AnalyticsService(ctx context.Context) tanl.AnalyticsService {
	if d.analyticsService == nil {
		d.analyticsService = anlsvc.NewAnalyticsService(
			d.SupplyRepository(ctx),
			d.PartRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.analyticsService
}

func (d *di) DocumentHandler(ctx context.Context) DocumentHandler {
	if d.documentHandler == nil {
		d.documentHandler = tdoc.NewDocumentHandler(
			d.DocumentRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.documentHandler
}

func (d *di) ImportHandler(ctx context.Context) ImportHandler {
	if d.importHandler == nil {
		d.importHandler = timp.NewImportHandler(d.ImportService(ctx))
	}

	return d.importHandler
}

func (d *di) OrderHandler(ctx context.Context) OrderHandler {
	if d.orderHandler == nil {
		d.orderHandler = tord.NewOrderHandler(d.OrderService(ctx))
	}

	return d.orderHandler
}

func (d *di) AnalyticsHandler(ctx context.Context) AnalyticsHandler {
	if d.analyticsHandler == nil {
		d.analyticsHandler = tanl.NewAnalyticsHandler(d.AnalyticsService(ctx))
	}

	return d.analyticsHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

func ensurePartIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "part_type", Value: 1}}},
		{Keys: bson.D{{Key: "blocked", Value: 1}}},
	}, options.CreateIndexes())

	return err
}
