// Package fuzztests houses Go fuzz harnesses for the reader pipeline
// (source -> lexer -> parser). They guard against panics, hangs and broken
// span invariants on arbitrary inputs.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер/парсер,
// проверяя инварианты спанов и печать в канонический вид.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/ast,
// internal/testkit.
package fuzztests
