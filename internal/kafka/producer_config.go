package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// ProducerConfig — параметры публикации событий статуса.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Writer — kafka.Writer: ключ сообщения — ID резерва, поэтому события одного резерва
// попадают в одну партицию и читаются по порядку.
func (c *ProducerConfig) Writer() *kafka.Writer {
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 10 * time.Second
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           wt,
		AllowAutoTopicCreation: true,
	}
}
