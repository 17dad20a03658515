package fuzztests

import (
	"io/fs"
	"testing"

	"prim/corpus"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addEmbeddedSeeds(f)
	// минимальные случаи, которые не зависят от корпуса
	f.Add([]byte{})
	f.Add([]byte("int main(void) { return 0; }\n"))
	f.Add([]byte("int x;  \nint y;\t\n\n\n\nint z;"))
	f.Add([]byte("#if A\nint a;\n#elif B\nint b;\n#else\nint c;\n#endif\n"))
	f.Add([]byte("char *s = \"unterminated\nchar c = 'x';\n"))
	f.Add([]byte("/* open block\n\n"))
}

// addEmbeddedSeeds скармливает встроенные примеры из corpus/samples.
func addEmbeddedSeeds(f *testing.F) {
	samples := corpus.Samples()
	err := fs.WalkDir(samples, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		src, err := fs.ReadFile(samples, path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
