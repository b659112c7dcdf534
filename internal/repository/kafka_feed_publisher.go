package repository

import (
	"context"

	"NewsRank/internal/domain/models"
	"NewsRank/internal/domain/repository"
	pkgkafka "NewsRank/pkg/kafka"
)

// KafkaFeedPublisher emits scored-feed events to Kafka.
type KafkaFeedPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaFeedPublisher creates a Kafka feed publisher.
func NewKafkaFeedPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaFeedPublisher{producer: producer, topic: topic}
}

func (p *KafkaFeedPublisher) PublishFeedScored(ctx context.Context, userID string, scored []models.ScoredArticle) error {
	if len(scored) == 0 {
		return nil
	}
	items := make([]map[string]interface{}, len(scored))
	for i, s := range scored {
		items[i] = map[string]interface{}{
			"article_id": s.Article.ID,
			"score":      s.Personalization.Score,
			"reason":     s.Personalization.Reason,
		}
	}
	// Key by user so one user's feed events stay ordered per partition.
	return p.producer.Publish(ctx, p.topic, []byte(userID), map[string]interface{}{
		"user_id":  userID,
		"articles": items,
	})
}

func (p *KafkaFeedPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
