package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
)

// builtinSeeds покрывают каждую ветку сканеров, включая ошибочные.
var builtinSeeds = []string{
	"",
	"var x := 1_000 + .5 * 1. - 1_2.3_4\n",
	"if a <<= b &^= c && d || !e { x++ } else { y-- }",
	"'a' '本' '\\n' '\\'' '' 'ab' '\\q' 'x",
	"\"abc\" \"a\\\"b\" \"open\n`raw\nstring` `open",
	"// line\n/* block\n */ /* open",
	"12abc 1_ 1__2 1.5f 99999999999999999999 #$@?\r\x00\xff",
	"func f() { const c = 'é'; for i := 0; i < 10; i += 1 {} }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.mygo файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".mygo" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
