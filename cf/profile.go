// Package cf 实现物品-物品协同过滤（Item-based Collaborative Filtering, i2i）的
// 批处理核心：画像构建 → 相似度计算 → 邻域选择 → 评分估计 → 推荐排序。
//
// 五个阶段都是纯函数：输入上一阶段物化的实体，输出下一阶段的实体，
// 阶段之间没有共享可变状态，同一输入跑多少遍结果都一致。
package cf

import (
	"github.com/rushteam/itemcf/core"
)

// BuildProfiles 从已解析的原始记录构建物品画像。
//
// 约定：
//   - 每个已知物品（movies 中出现的）初始化一个空画像
//   - 评分逐条灌入 Ratings（userID -> 评分）；指向未知物品的评分被跳过
//   - 所有评分插入完成后计算一次 MeanRating，之后不再更新
//   - 标签按给定顺序追加，不去重；指向未知物品的标签被跳过
//   - 零评分 / 零标签的物品是合法的稀疏画像，不报错
func BuildProfiles(
	movies []core.MovieRecord,
	ratings []core.RatingRecord,
	tags []core.TagRecord,
) core.ItemProfiles {
	profiles := make(core.ItemProfiles, len(movies))

	for _, m := range movies {
		p := core.NewItemProfile(m.ID)
		p.Title = m.Title
		p.Genres = m.Genres
		profiles[m.ID] = p
	}

	for _, r := range ratings {
		p, ok := profiles[r.ItemID]
		if !ok {
			continue
		}
		p.Ratings[r.UserID] = r.Value
	}

	// 均值只在全量灌入后算一次；后续任何人改 Ratings 都不会触发重算（单批次假设）
	for _, p := range profiles {
		if len(p.Ratings) == 0 {
			continue
		}
		var sum float64
		for _, v := range p.Ratings {
			sum += v
		}
		p.MeanRating = sum / float64(len(p.Ratings))
	}

	for _, t := range tags {
		p, ok := profiles[t.ItemID]
		if !ok {
			continue
		}
		p.Tags = append(p.Tags, t.Tag)
	}

	return profiles
}

// AttachLinks 把外部交叉引用（IMDB/TMDB）挂载到已有画像上。
// 核心算法不消费这些字段，仅供下游展示/关联；指向未知物品的链接被跳过。
func AttachLinks(profiles core.ItemProfiles, links []core.LinkRecord) {
	for _, l := range links {
		if p, ok := profiles[l.ItemID]; ok {
			p.IMDBID = l.IMDBID
			p.TMDBID = l.TMDBID
		}
	}
}
