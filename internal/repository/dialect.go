package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const dialectPostgres = "postgres"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// dialectOf 当前连接的方言名，未知时按 sqlite 处理
func dialectOf(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	return strings.ToLower(db.Dialector.Name())
}

// matchKeyword 多列模糊搜索；postgres 用 ILIKE，关键字中的通配符按字面匹配
func matchKeyword(keyword string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" || len(columns) == 0 {
			return db
		}
		operator := "LIKE"
		if dialectOf(db) == dialectPostgres {
			operator = "ILIKE"
		}
		pattern := "%" + likeEscaper.Replace(keyword) + "%"
		conds := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, column := range columns {
			conds[i] = fmt.Sprintf(`%s %s ? ESCAPE '\'`, column, operator)
			args[i] = pattern
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// dayBucket 按天分组的表达式，输出 YYYY-MM-DD
func dayBucket(db *gorm.DB, column string) string {
	if dialectOf(db) == dialectPostgres {
		return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", column)
	}
	return fmt.Sprintf("CAST(date(%s) AS TEXT)", column)
}
