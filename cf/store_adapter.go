package cf

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rushteam/itemcf/core"
)

// StoreSink 是基于 core.Store 接口的推荐结果落库适配器。
// 批处理结束后把每个用户的推荐列表和预测评分写入 Redis/内存等存储，
// 供线上按用户读取。
type StoreSink struct {
	store core.Store

	// KeyPrefix 是存储 key 的前缀
	// 用户推荐列表：{KeyPrefix}:user:{userID}
	// 用户预测评分（zset）：{KeyPrefix}:est:{userID}
	// 全量用户列表：{KeyPrefix}:users
	KeyPrefix string
}

// NewStoreSink 创建一个推荐结果落库适配器。
func NewStoreSink(s core.Store, keyPrefix string) *StoreSink {
	if keyPrefix == "" {
		keyPrefix = "rec"
	}
	return &StoreSink{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

// Name 返回适配器名称（用于日志/监控）
func (a *StoreSink) Name() string {
	return "store_sink"
}

// SaveRecommendations 批量写入全量用户的推荐列表（JSON），并记录用户清单。
func (a *StoreSink) SaveRecommendations(ctx context.Context, recs core.Recommendations) error {
	kvs := make(map[string][]byte, len(recs)+1)
	users := make([]int64, 0, len(recs))

	for userID, items := range recs {
		data, err := json.Marshal(items)
		if err != nil {
			return err
		}
		kvs[a.userKey(userID)] = data
		users = append(users, userID)
	}

	userList, err := json.Marshal(users)
	if err != nil {
		return err
	}
	kvs[a.KeyPrefix+":users"] = userList

	return a.store.BatchSet(ctx, kvs)
}

// GetRecommendations 读取单个用户的推荐列表；key 不存在时返回空列表。
func (a *StoreSink) GetRecommendations(ctx context.Context, userID int64) ([]int64, error) {
	data, err := a.store.Get(ctx, a.userKey(userID))
	if err != nil {
		if core.IsStoreNotFound(err) {
			return []int64{}, nil
		}
		return nil, err
	}

	var items []int64
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetAllUsers 读取有推荐结果的全量用户清单。
func (a *StoreSink) GetAllUsers(ctx context.Context) ([]int64, error) {
	data, err := a.store.Get(ctx, a.KeyPrefix+":users")
	if err != nil {
		if core.IsStoreNotFound(err) {
			return []int64{}, nil
		}
		return nil, err
	}

	var users []int64
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveEstimates 把预测评分写入每用户一个有序集合（member=itemID, score=预测评分），
// 线上可按分数直接读 TopN。需要后端实现 core.KeyValueStore，否则返回
// core.ErrStoreNotSupported。
func (a *StoreSink) SaveEstimates(ctx context.Context, estimates core.EstimatedRatings) error {
	kv, ok := a.store.(core.KeyValueStore)
	if !ok {
		return core.ErrStoreNotSupported
	}

	for userID, userEst := range estimates {
		key := a.estKey(userID)
		for itemID, score := range userEst {
			if err := kv.ZAdd(ctx, key, score, strconv.FormatInt(itemID, 10)); err != nil {
				return err
			}
		}
	}
	return nil
}

// TopEstimates 按预测评分降序读取单个用户的前 n 个物品 id。
func (a *StoreSink) TopEstimates(ctx context.Context, userID int64, n int) ([]int64, error) {
	kv, ok := a.store.(core.KeyValueStore)
	if !ok {
		return nil, core.ErrStoreNotSupported
	}

	members, err := kv.ZRange(ctx, a.estKey(userID), 0, int64(n)-1)
	if err != nil {
		return nil, err
	}

	items := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		items = append(items, id)
	}
	return items, nil
}

func (a *StoreSink) userKey(userID int64) string {
	return a.KeyPrefix + ":user:" + strconv.FormatInt(userID, 10)
}

func (a *StoreSink) estKey(userID int64) string {
	return a.KeyPrefix + ":est:" + strconv.FormatInt(userID, 10)
}
