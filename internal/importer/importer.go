// Package importer は表形式ファイル (xlsx / CSV) を
// シート1件と問題レコード群に変換する純粋な変換処理です。
// 永続化は行いません。
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"go_5_sheet_keep/internal/model"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrParse はファイルを表形式データとして解釈できなかった場合のエラーです。
	ErrParse = errors.New("failed to parse file")
	// ErrNoValidProblems は解析はできたが有効な問題行が1件もなかった場合のエラーです。
	// ErrParse とは区別して呼び出し側に報告します。
	ErrNoValidProblems = errors.New("no valid problems found in file")
)

// Sheet はインポートで作成されるシートのドラフトです (IDは呼び出し側が採番)。
type Sheet struct {
	Title       string
	Description string
}

// Problem はインポートで受理された1問題のドラフトです。
type Problem struct {
	Title      string
	Link       string
	Platform   string
	Difficulty string
	Topic      string
	Notes      string
	Status     model.ProblemStatus
}

// Result はインポート結果です。Problems は入力ファイルの行順を保持します。
type Result struct {
	Sheet    Sheet
	Problems []Problem
}

// ヘッダーのエイリアス表。小文字比較で先頭一致が勝ちます。
// この表が唯一のマッチングポリシーであり、曖昧一致は行いません。
var headerAliases = map[string][]string{
	"link":       {"problem link", "link", "url"},
	"title":      {"title", "problem name"},
	"platform":   {"platform"},
	"difficulty": {"difficulty"},
	"topic":      {"topic"},
	"notes":      {"notes"},
}

// Parse はファイルのバイト列を解析し、シートドラフトと問題リストを返します。
// 先頭行をヘッダーとして扱い、解決された link が "http" で始まる行のみを受理します。
func Parse(data []byte, filename string, now time.Time) (*Result, error) {
	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		// ヘッダーのみ、または空ファイル。解析自体は成功しているので ErrParse ではない
		return nil, ErrNoValidProblems
	}

	cols := resolveColumns(rows[0])

	problems := make([]Problem, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		link := cols.value(row, "link")
		if link == "" {
			// エイリアスに該当する列がなければ先頭列の生値をリンクとみなす
			link = strings.TrimSpace(row[0])
		}
		if !strings.HasPrefix(link, "http") {
			// リンクとして成立しない行は黙ってスキップ (エラーにしない)
			continue
		}

		platform := cols.value(row, "platform")
		if platform == "" {
			platform = detectPlatform(link)
		}

		title := cols.value(row, "title")
		if title == "" {
			title = "Untitled Problem"
		}

		problems = append(problems, Problem{
			Title:      title,
			Link:       link,
			Platform:   platform,
			Difficulty: cols.value(row, "difficulty"),
			Topic:      cols.value(row, "topic"),
			Notes:      cols.value(row, "notes"),
			Status:     model.StatusNotStarted,
		})
	}

	if len(problems) == 0 {
		return nil, ErrNoValidProblems
	}

	return &Result{
		Sheet: Sheet{
			Title:       fmt.Sprintf("Imported Sheet %s", now.Format("2006/01/02")),
			Description: fmt.Sprintf("Bulk upload from %s", filename),
		},
		Problems: problems,
	}, nil
}

// readRows はバイト列を行列に変換します。
// zipマジックナンバー (xlsxはzip形式) を持つ場合はexcelizeで、それ以外はCSVとして読みます。
func readRows(data []byte) ([][]string, error) {
	if bytes.HasPrefix(data, []byte("PK")) {
		return readXLSX(data)
	}
	return readCSV(data)
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}

	// 先頭のワークシートのみ対象
	rows, err := f.GetRows(sheetNames[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // 行ごとの列数のばらつきを許容
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return rows, nil
}

// columnIndex は出力フィールド名 → 列番号のマッピングです。
type columnIndex map[string]int

// resolveColumns はヘッダー行をエイリアス表と突き合わせ、列位置を解決します。
func resolveColumns(header []string) columnIndex {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	cols := make(columnIndex)
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			found := false
			for i, h := range normalized {
				if h == alias {
					cols[field] = i
					found = true
					break
				}
			}
			if found {
				break // 最初に一致したエイリアスが勝ち
			}
		}
	}
	return cols
}

// value は解決済みの列から行の値を取り出します。列がない・範囲外なら空文字を返します。
func (c columnIndex) value(row []string, field string) string {
	idx, ok := c[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// detectPlatform はリンクからプラットフォーム名を推定します。
// 明示的なプラットフォーム列がある場合はそちらが優先されます。
func detectPlatform(link string) string {
	switch {
	case strings.Contains(link, "codeforces.com"):
		return "Codeforces"
	case strings.Contains(link, "atcoder.jp"):
		return "AtCoder"
	default:
		return "Custom"
	}
}
