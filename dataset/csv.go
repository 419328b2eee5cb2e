// Package dataset 是核心流水线的外部数据协作方：负责把 MovieLens 布局的
// CSV 文件解析成 core 的原始记录，以及把最终推荐结果序列化输出。
// 核心算法（cf 包）不感知文件格式、编码和存储路径。
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rushteam/itemcf/core"
)

// Dataset 是一次批处理需要的全部输入记录。
type Dataset struct {
	Movies  []core.MovieRecord
	Ratings []core.RatingRecord
	Links   []core.LinkRecord
	Tags    []core.TagRecord
}

// LoadDir 按 MovieLens 的标准文件名（movies.csv / ratings.csv / links.csv /
// tags.csv）从目录加载完整数据集。links.csv 与 tags.csv 允许缺失（可选输入）。
func LoadDir(dir string) (*Dataset, error) {
	ds := &Dataset{}

	movies, err := loadFile(filepath.Join(dir, "movies.csv"), ReadMovies)
	if err != nil {
		return nil, err
	}
	ds.Movies = movies

	ratings, err := loadFile(filepath.Join(dir, "ratings.csv"), ReadRatings)
	if err != nil {
		return nil, err
	}
	ds.Ratings = ratings

	links, err := loadFile(filepath.Join(dir, "links.csv"), ReadLinks)
	if err != nil && !os.IsNotExist(unwrapPathError(err)) {
		return nil, err
	}
	ds.Links = links

	tags, err := loadFile(filepath.Join(dir, "tags.csv"), ReadTags)
	if err != nil && !os.IsNotExist(unwrapPathError(err)) {
		return nil, err
	}
	ds.Tags = tags

	return ds, nil
}

func loadFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func unwrapPathError(err error) error {
	for {
		type unwrapper interface{ Unwrap() error }
		u, ok := err.(unwrapper)
		if !ok {
			return err
		}
		inner := u.Unwrap()
		if inner == nil {
			return err
		}
		err = inner
	}
}

// ReadMovies 解析 movies.csv（movieId,title,genres，genres 以 '|' 分隔）。
func ReadMovies(r io.Reader) ([]core.MovieRecord, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	idx, err := columns(header, "movieId", "title", "genres")
	if err != nil {
		return nil, err
	}

	movies := make([]core.MovieRecord, 0, len(rows))
	for i, row := range rows {
		id, err := parseID(row[idx[0]])
		if err != nil {
			return nil, rowError(i, "movieId", err)
		}
		movies = append(movies, core.MovieRecord{
			ID:     id,
			Title:  row[idx[1]],
			Genres: strings.Split(row[idx[2]], "|"),
		})
	}
	return movies, nil
}

// ReadRatings 解析 ratings.csv（userId,movieId,rating,timestamp）。
func ReadRatings(r io.Reader) ([]core.RatingRecord, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	idx, err := columns(header, "userId", "movieId", "rating", "timestamp")
	if err != nil {
		return nil, err
	}

	ratings := make([]core.RatingRecord, 0, len(rows))
	for i, row := range rows {
		userID, err := parseID(row[idx[0]])
		if err != nil {
			return nil, rowError(i, "userId", err)
		}
		itemID, err := parseID(row[idx[1]])
		if err != nil {
			return nil, rowError(i, "movieId", err)
		}
		value, err := strconv.ParseFloat(row[idx[2]], 64)
		if err != nil {
			return nil, rowError(i, "rating", err)
		}
		ts, err := parseID(row[idx[3]])
		if err != nil {
			return nil, rowError(i, "timestamp", err)
		}
		ratings = append(ratings, core.RatingRecord{
			UserID:    userID,
			ItemID:    itemID,
			Value:     value,
			Timestamp: ts,
		})
	}
	return ratings, nil
}

// ReadLinks 解析 links.csv（movieId,imdbId,tmdbId；后两列按原文保留为字符串）。
func ReadLinks(r io.Reader) ([]core.LinkRecord, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	idx, err := columns(header, "movieId", "imdbId", "tmdbId")
	if err != nil {
		return nil, err
	}

	links := make([]core.LinkRecord, 0, len(rows))
	for i, row := range rows {
		id, err := parseID(row[idx[0]])
		if err != nil {
			return nil, rowError(i, "movieId", err)
		}
		links = append(links, core.LinkRecord{
			ItemID: id,
			IMDBID: row[idx[1]],
			TMDBID: row[idx[2]],
		})
	}
	return links, nil
}

// ReadTags 解析 tags.csv（userId,movieId,tag,timestamp）。
func ReadTags(r io.Reader) ([]core.TagRecord, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	idx, err := columns(header, "userId", "movieId", "tag", "timestamp")
	if err != nil {
		return nil, err
	}

	tags := make([]core.TagRecord, 0, len(rows))
	for i, row := range rows {
		userID, err := parseID(row[idx[0]])
		if err != nil {
			return nil, rowError(i, "userId", err)
		}
		itemID, err := parseID(row[idx[1]])
		if err != nil {
			return nil, rowError(i, "movieId", err)
		}
		ts, err := parseID(row[idx[3]])
		if err != nil {
			return nil, rowError(i, "timestamp", err)
		}
		tags = append(tags, core.TagRecord{
			ItemID:    itemID,
			UserID:    userID,
			Tag:       row[idx[2]],
			Timestamp: ts,
		})
	}
	return tags, nil
}

// readAll 读出表头和全部数据行。
func readAll(r io.Reader) (rows [][]string, header []string, err error) {
	cr := csv.NewReader(r)
	// 列数以表头为准，短行/长行由 csv.Reader 报 ErrFieldCount

	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput, "dataset: empty csv, missing header")
	}
	return all[1:], all[0], nil
}

// columns 把列名解析成下标，缺列时报 INVALID_INPUT。
func columns(header []string, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		found := -1
		for j, h := range header {
			if strings.TrimSpace(h) == name {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
				fmt.Sprintf("dataset: missing column %q", name))
		}
		idx[i] = found
	}
	return idx, nil
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func rowError(row int, column string, err error) error {
	// row 是数据行下标；+2 折算成含表头的文件行号
	return fmt.Errorf("row %d column %s: %w", row+2, column, err)
}
