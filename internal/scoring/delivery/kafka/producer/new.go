package producer

import (
	"engagement-srv/internal/scoring"
	pkgKafka "engagement-srv/pkg/kafka"
	"engagement-srv/pkg/log"
)

// Producer interface for scoring domain
type Producer interface {
	scoring.EventProducer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new scoring producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
