package psqlbuilder

import (
	"sync/atomic"

	"github.com/Masterminds/squirrel"
)

var dialect atomic.Value

func init() {
	dialect.Store(squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
}

// UseQuestionPlaceholders переключает построитель на "?" (sqlite)
// Вызывается один раз при старте, до первых запросов
func UseQuestionPlaceholders() {
	dialect.Store(squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question))
}

// UseDollarPlaceholders переключает построитель на "$1" (postgres)
func UseDollarPlaceholders() {
	dialect.Store(squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar))
}

func builder() squirrel.StatementBuilderType {
	return dialect.Load().(squirrel.StatementBuilderType)
}

func Select(columns ...string) squirrel.SelectBuilder {
	return builder().Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return builder().Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder().Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return builder().Delete(table)
}
