// Package fuzztests houses Go fuzz harnesses for the tokenizer. Its goal is
// to smoke test robustness and guard against panics, stalls, or broken
// spans on arbitrary inputs.
//
// Назначение: загружать байты в FileSet, прогонять их через лексер и
// проверять инварианты через testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/testkit.
package fuzztests
