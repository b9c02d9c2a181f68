package database

import "strings"

// filterBuilder は WHERE 句の条件とバインド引数をまとめて組み立てます。
// 条件文字列は固定のSQL断片のみとし、利用者の入力は必ず args 側に渡すこと。
type filterBuilder struct {
	conditions []string
	args       []interface{}
}

func (f *filterBuilder) add(cond string, args ...interface{}) {
	f.conditions = append(f.conditions, cond)
	f.args = append(f.args, args...)
}

// where は条件を AND で結合した " WHERE ..." を返します。条件が無ければ空文字です。
func (f *filterBuilder) where() string {
	if len(f.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conditions, " AND ")
}
