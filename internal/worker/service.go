package worker

import (
	"context"
	"errors"
	"time"

	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/queue"

	"github.com/hibiken/asynq"
)

const sweepPageSize = 100

// Service 异步队列服务
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if interval := s.consumer.sweepInterval(); interval > 0 {
		go s.runLowStockSweepLoop(ctx, interval)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runLowStockSweepLoop(ctx context.Context, interval time.Duration) {
	s.consumer.SweepLowStock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.consumer.SweepLowStock()
		}
	}
}

// SweepLowStock 巡检全部低库存记录并输出告警日志，返回告警条数
func (c *Consumer) SweepLowStock() int {
	if !c.lowStockEnabled() {
		return 0
	}
	alerts := 0
	for page := 1; ; page++ {
		items, total, err := c.InventoryService.ListLowStock(0, page, sweepPageSize)
		if err != nil {
			logger.Warnw("worker_low_stock_sweep_failed", "page", page, "error", err)
			return alerts
		}
		for _, item := range items {
			logger.Warnw("inventory_low_stock",
				"inventory_id", item.ID,
				"product_id", item.ProductID,
				"current_stock", item.CurrentStock,
				"minimum_stock", item.MinimumStock,
				"source", "sweep",
			)
			alerts++
		}
		if len(items) == 0 || int64(page*sweepPageSize) >= total {
			break
		}
	}
	if alerts > 0 {
		logger.Infow("worker_low_stock_sweep_done", "alerts", alerts)
	}
	return alerts
}

func (c *Consumer) sweepInterval() time.Duration {
	if c == nil || c.Container == nil || c.Config == nil {
		return 0
	}
	minutes := c.Config.Inventory.SweepIntervalMinutes
	if minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}
