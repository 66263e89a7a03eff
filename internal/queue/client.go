package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/logger"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault
	// CriticalQueue 高优先级队列名称（支付相关）
	CriticalQueue = constants.QueueCritical

	taskTimeout = 30 * time.Second
)

// Client 队列客户端封装，client 为空时所有投递都是空操作
type Client struct {
	client *asynq.Client
}

// NewClient 创建队列客户端，未启用时返回空操作客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{}, nil
	}
	return &Client{client: asynq.NewClient(buildRedisOpt(cfg))}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// EnqueuePaymentRecorded 推送支付记录任务。
// 同一支付的同一状态在任务保留期内只投递一次。
func (c *Client) EnqueuePaymentRecorded(payload PaymentRecordedPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewPaymentRecordedTask(payload)
	if err != nil {
		return err
	}
	base := []asynq.Option{
		asynq.Queue(CriticalQueue),
		asynq.MaxRetry(5),
		asynq.TaskID(fmt.Sprintf("payment:%d:%s", payload.PaymentID, strings.ToLower(payload.PaymentStatus))),
		asynq.Retention(time.Hour),
	}
	return c.enqueue(task, append(base, opts...))
}

// EnqueueLowStockCheck 推送低库存检查任务
func (c *Client) EnqueueLowStockCheck(payload LowStockPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewLowStockTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, append([]asynq.Option{asynq.Queue(DefaultQueue), asynq.MaxRetry(3)}, opts...))
}

func (c *Client) enqueue(task *asynq.Task, opts []asynq.Option) error {
	info, err := c.client.Enqueue(task, append([]asynq.Option{asynq.Timeout(taskTimeout)}, opts...)...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Debugw("queue_task_duplicate_skipped", "type", task.Type())
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debugw("queue_task_enqueued", "type", task.Type(), "id", info.ID, "queue", info.Queue)
	return nil
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	concurrency := 10
	queues := map[string]int{DefaultQueue: 1, CriticalQueue: 2}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			concurrency = cfg.Concurrency
		}
		if custom := normalizeQueues(cfg.Queues); len(custom) > 0 {
			queues = custom
		}
	}
	return buildRedisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			logger.Warnw("queue_task_failed", "type", task.Type(), "retried", retried, "error", err)
		}),
	}
}

// normalizeQueues 去掉空名称与非正权重
func normalizeQueues(raw map[string]int) map[string]int {
	queues := make(map[string]int, len(raw))
	for name, weight := range raw {
		name = strings.TrimSpace(name)
		if name == "" || weight <= 0 {
			continue
		}
		queues[name] = weight
	}
	return queues
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	opt := asynq.RedisClientOpt{Addr: "127.0.0.1:6379"}
	if cfg == nil {
		return opt
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	opt.Addr = fmt.Sprintf("%s:%d", host, port)
	opt.Password = cfg.Password
	opt.DB = cfg.DB
	return opt
}
