package filter

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rushteam/itemcf/core"
)

// StoreAdapter 将 core.Store 适配为过滤器所需的存储接口
// （BlacklistStore 与 UserBlockStore）。列表以 JSON 数组存储。
type StoreAdapter struct {
	store core.Store
}

// NewStoreAdapter 创建一个 core.Store 适配器。
func NewStoreAdapter(s core.Store) *StoreAdapter {
	return &StoreAdapter{store: s}
}

// GetBlacklist 从 Store 读取黑名单；key 不存在时返回空列表。
func (a *StoreAdapter) GetBlacklist(ctx context.Context, key string) ([]int64, error) {
	return a.getIDList(ctx, key)
}

// GetUserBlocks 从 Store 读取用户拉黑列表；key 不存在时返回空列表。
func (a *StoreAdapter) GetUserBlocks(ctx context.Context, userID int64, keyPrefix string) ([]int64, error) {
	key := keyPrefix + ":" + strconv.FormatInt(userID, 10)
	return a.getIDList(ctx, key)
}

func (a *StoreAdapter) getIDList(ctx context.Context, key string) ([]int64, error) {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return []int64{}, nil
		}
		return nil, err
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

var (
	_ BlacklistStore = (*StoreAdapter)(nil)
	_ UserBlockStore = (*StoreAdapter)(nil)
)
