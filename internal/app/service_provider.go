package app

import (
	slotAPI "roguelike_slots/internal/api/slot"
	"roguelike_slots/internal/api/ws"
	"roguelike_slots/internal/config"
	"roguelike_slots/internal/config/env"
	"roguelike_slots/internal/event"
	"roguelike_slots/internal/logger"
	"roguelike_slots/internal/node"
	"roguelike_slots/internal/repository"
	"roguelike_slots/internal/repository/stats_repo"
	"roguelike_slots/internal/service"
	"roguelike_slots/internal/service/slot"
	"roguelike_slots/internal/service/stats"
	"roguelike_slots/pkg/random"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	configPath string

	// Configs
	httpCfg  config.HTTPConfig
	logCfg   config.LogConfig
	statsCfg config.StatsConfig
	nodeCfg  config.NodeConfig

	logger *zap.Logger

	// Slot bits
	bus     *event.Bus
	rnd     random.Source
	machine service.SlotMachine
	node    *node.Node

	// Stats bits
	statsRepo repository.StatsRepository
	statsServ service.StatsService

	// Transport
	hub      *ws.Hub
	slotHand *slotAPI.Handler
	router   chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig(sp.configPath)
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig(sp.configPath)
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) StatsCfg() config.StatsConfig {
	if sp.statsCfg == nil {
		cfg, err := env.NewStatsConfig(sp.configPath)
		if err != nil {
			panic("failed to get stats config: " + err.Error())
		}
		sp.statsCfg = cfg
	}
	return sp.statsCfg
}

func (sp *ServiceProvider) NodeCfg() config.NodeConfig {
	if sp.nodeCfg == nil {
		cfg, err := env.NewNodeConfig(sp.configPath)
		if err != nil {
			panic("failed to get node config: " + err.Error())
		}
		sp.nodeCfg = cfg
	}
	return sp.nodeCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LogCfg().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) EventBus() *event.Bus {
	if sp.bus == nil {
		bus := event.NewBus()
		// Все уведомления дублируются в debug лог
		for _, name := range event.Names {
			name := name
			bus.Subscribe(name, func(payload any) {
				sp.Logger().Debug("slot event", zap.String("event", name), zap.Any("payload", payload))
			})
		}
		sp.bus = bus
	}
	return sp.bus
}

func (sp *ServiceProvider) Random() random.Source {
	if sp.rnd == nil {
		sp.rnd = random.NewDefault()
	}
	return sp.rnd
}

func (sp *ServiceProvider) SlotMachine() service.SlotMachine {
	if sp.machine == nil {
		sp.machine = slot.NewSlotMachine(sp.EventBus(), sp.Random(), sp.Logger())
	}
	return sp.machine
}

func (sp *ServiceProvider) Node() *node.Node {
	if sp.node == nil {
		sp.node = node.New(sp.SlotMachine(), sp.Logger())
	}
	return sp.node
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.StatsCfg().WindowSize())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) StatsService() service.StatsService {
	if sp.statsServ == nil {
		serv := stats.NewStatsService(sp.StatsRepository(), sp.SlotMachine())
		serv.Subscribe(sp.EventBus())
		sp.statsServ = serv
	}
	return sp.statsServ
}

func (sp *ServiceProvider) Hub() *ws.Hub {
	if sp.hub == nil {
		hub := ws.NewHub(sp.Logger())
		hub.Subscribe(sp.EventBus())
		sp.hub = hub
	}
	return sp.hub
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Node:  sp.Node(),
			Stats: sp.StatsService(),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		slotHandler := sp.SlotHandler()
		r.Get("/health", slotHandler.Health)

		// Slot endpoints
		r.Route("/slot", func(rr chi.Router) {
			slotHandler.Routes(rr)
			rr.Handle("/events", sp.Hub())
		})

		sp.router = r
	}

	return sp.router
}
