package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sbilibin2017/earnly/internal/models"
)

// ChannelRepository serves a fixed channel catalogue.
type ChannelRepository struct {
	mu       sync.RWMutex
	channels map[int64]models.Channel
}

// NewChannelRepository creates a catalogue seeded with channels.
func NewChannelRepository(channels ...models.Channel) *ChannelRepository {
	r := &ChannelRepository{channels: make(map[int64]models.Channel, len(channels))}
	for _, c := range channels {
		r.channels[c.ID] = c
	}
	return r
}

func (r *ChannelRepository) List(ctx context.Context) ([]models.Channel, error) {
	r.mu.RLock()
	out := make([]models.Channel, 0, len(r.channels))
	for _, c := range r.channels {
		out = append(out, c)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ChannelRepository) Get(ctx context.Context, id int64) (*models.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.channels[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}
