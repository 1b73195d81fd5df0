package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"portal/internal/configuration"

	"github.com/redis/rueidis"
)

type RueidisCache struct {
	client rueidis.Client
}

func newRueidisCache(
	hosts []string,
	password string,
	tlsEnabled bool,
	tlsServerName,
	errorContext string,
) (*RueidisCache, error) {
	clientOption := rueidis.ClientOption{
		InitAddress: hosts,
		Password:    password,
	}

	if tlsEnabled {
		clientOption.TLSConfig = &tls.Config{
			ServerName: tlsServerName,
			MinVersion: tls.VersionTLS12,
		}
	}

	client, err := rueidis.NewClient(clientOption)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", errorContext, err)
	}
	return &RueidisCache{client: client}, nil
}

func (r *RueidisCache) IncrementSMSCount(ctx context.Context, phone string, day string) (int64, error) {
	key := fmt.Sprintf(configuration.CacheSMSCountKey, phone, day)
	count, err := r.client.Do(ctx, r.client.B().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		expireErr := r.client.Do(
			ctx,
			r.client.B().Expire().Key(key).Seconds(int64(configuration.CacheSMSCountTTL.Seconds())).Build(),
		).Error()
		if expireErr != nil {
			return 0, expireErr
		}
	}

	return count, nil
}

func (r *RueidisCache) GetConversation(ctx context.Context, id string) ([]byte, error) {
	key := fmt.Sprintf(configuration.CacheConversationKey, id)
	payload, err := r.client.Do(ctx, r.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (r *RueidisCache) SetConversation(
	ctx context.Context,
	id string,
	payload []byte,
	ttl time.Duration,
) error {
	key := fmt.Sprintf(configuration.CacheConversationKey, id)
	return r.client.Do(
		ctx,
		r.client.B().Set().Key(key).Value(string(payload)).Ex(ttl).Build(),
	).Error()
}

func (r *RueidisCache) DeleteConversation(ctx context.Context, id string) error {
	key := fmt.Sprintf(configuration.CacheConversationKey, id)
	return r.client.Do(ctx, r.client.B().Del().Key(key).Build()).Error()
}

func (r *RueidisCache) Close() error {
	r.client.Close()
	return nil
}
