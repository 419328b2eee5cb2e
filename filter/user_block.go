package filter

import (
	"context"

	"github.com/rushteam/itemcf/core"
)

// UserBlockFilter 是用户拉黑过滤器，过滤掉用户拉黑的物品（按用户生效）。
type UserBlockFilter struct {
	// Store 用于从存储中读取用户拉黑列表
	Store UserBlockStore

	// KeyPrefix 是 Store 中的 key 前缀，实际 key 为 {KeyPrefix}:{UserID}
	KeyPrefix string
}

// UserBlockStore 是用户拉黑存储接口。
type UserBlockStore interface {
	// GetUserBlocks 获取用户拉黑的物品 ID 列表
	GetUserBlocks(ctx context.Context, userID int64, keyPrefix string) ([]int64, error)
}

// NewUserBlockFilter 创建一个用户拉黑过滤器。
func NewUserBlockFilter(storeAdapter *StoreAdapter, keyPrefix string) *UserBlockFilter {
	var store UserBlockStore
	if storeAdapter != nil {
		store = storeAdapter
	}
	return &UserBlockFilter{
		Store:     store,
		KeyPrefix: keyPrefix,
	}
}

func (f *UserBlockFilter) Name() string {
	return "filter.user_block"
}

func (f *UserBlockFilter) ShouldFilter(
	ctx context.Context,
	userID int64,
	cand *core.Candidate,
	_ *core.ItemProfile,
) (bool, error) {
	if cand == nil {
		return false, nil
	}
	if f.Store == nil {
		return false, nil
	}

	keyPrefix := f.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = "user:block"
	}

	blockedIDs, err := f.Store.GetUserBlocks(ctx, userID, keyPrefix)
	if err != nil {
		// 读取失败时不阻断流程，按未拉黑处理
		return false, nil
	}

	for _, id := range blockedIDs {
		if cand.ID == id {
			return true, nil
		}
	}
	return false, nil
}
