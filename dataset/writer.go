package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/rushteam/itemcf/core"
)

// WriteRecommendations 把推荐结果序列化为每用户一行的文本：
//
//	<user_id> <item_id_1> <item_id_2> ...
//
// 用户按 id 升序输出；物品保持列表顺序（排序阶段已按 id 升序）。
func WriteRecommendations(w io.Writer, recs core.Recommendations) error {
	users := make([]int64, 0, len(recs))
	for userID := range recs {
		users = append(users, userID)
	}
	sort.Slice(users, func(a, b int) bool { return users[a] < users[b] })

	bw := bufio.NewWriter(w)
	for _, userID := range users {
		if _, err := bw.WriteString(strconv.FormatInt(userID, 10)); err != nil {
			return err
		}
		for _, itemID := range recs[userID] {
			if _, err := bw.WriteString(" " + strconv.FormatInt(itemID, 10)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteRecommendationsFile 把推荐结果写入文件（覆盖写）。
func WriteRecommendationsFile(path string, recs core.Recommendations) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteRecommendations(f, recs); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
