package counter

import (
	"context"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const businessTypePicksKey = "pricing:counters:business_type"

// Pick is how often visitors chose a business type in the calculator.
type Pick struct {
	Key   string
	Count int64
}

// Counter keeps calculator counters in a redis hash. A nil Counter
// records nothing.
type Counter struct {
	rdb redis.Cmdable
}

func New(rdb redis.Cmdable) *Counter {
	if rdb == nil {
		return nil
	}
	return &Counter{rdb: rdb}
}

// AddBusinessTypePick increments the counter for a business type.
func (c *Counter) AddBusinessTypePick(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.rdb.HIncrBy(ctx, businessTypePicksKey, key, 1).Err()
}

// BusinessTypePicks returns all counters, most picked first.
func (c *Counter) BusinessTypePicks(ctx context.Context) ([]Pick, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.rdb.HGetAll(ctx, businessTypePicksKey).Result()
	if err != nil {
		return nil, err
	}
	return sortPicks(data), nil
}

func sortPicks(data map[string]string) []Pick {
	picks := make([]Pick, 0, len(data))
	for key, v := range data {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n == 0 {
			continue
		}
		picks = append(picks, Pick{Key: key, Count: n})
	}
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].Count != picks[j].Count {
			return picks[i].Count > picks[j].Count
		}
		return picks[i].Key < picks[j].Key
	})
	return picks
}
