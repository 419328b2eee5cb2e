package core

// 本文件定义批处理输入的原始记录。
// 记录由外部的数据读取层（dataset 包）解析产生，进入核心流水线后不再修改。

// MovieRecord 是物品元数据记录（MovieLens movies.csv 的一行）。
type MovieRecord struct {
	ID     int64
	Title  string
	Genres []string // 按源文件顺序保留
}

// RatingRecord 是一条用户对物品的评分记录。
// Value 为评分原值；Timestamp 为打分时间（秒），核心算法不消费但全程携带。
type RatingRecord struct {
	UserID    int64
	ItemID    int64
	Value     float64
	Timestamp int64
}

// LinkRecord 是物品的外部交叉引用（IMDB/TMDB 标识）。
// 核心算法不消费，仅挂载到 ItemProfile 供下游展示/关联使用。
type LinkRecord struct {
	ItemID int64
	IMDBID string
	TMDBID string
}

// TagRecord 是用户给物品打的自由文本标签。
type TagRecord struct {
	ItemID    int64
	UserID    int64
	Tag       string
	Timestamp int64
}
