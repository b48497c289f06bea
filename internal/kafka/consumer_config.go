package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Значения по умолчанию для читателя событий статуса.
const (
	defaultMaxWait  = 500 * time.Millisecond
	defaultMaxBytes = 1 << 20
)

// ConsumerConfig — параметры читателя событий статуса.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" | "last" (по умолчанию)
	MaxWait     time.Duration

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// startOffset — "first" читает топик с начала, всё остальное означает хвост.
func startOffset(raw string) int64 {
	if strings.EqualFold(strings.TrimSpace(raw), "first") {
		return kafka.FirstOffset
	}
	return kafka.LastOffset
}

// ReaderConfig — конфиг kafka.Reader в consumer group с ручным коммитом оффсетов
// (CommitInterval = 0: коммитим только обработанные или пропущенные сообщения).
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	maxWait := c.MaxWait
	if maxWait <= 0 {
		maxWait = defaultMaxWait
	}
	return kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		StartOffset:    startOffset(c.StartOffset),
		MinBytes:       1,
		MaxBytes:       defaultMaxBytes,
		MaxWait:        maxWait,
		CommitInterval: 0,
	}
}
