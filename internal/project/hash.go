package project

import (
	"crypto/sha256"

	"github.com/BurntSushi/toml"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Hash считает дайджест действующей конфигурации через её каноничную TOML
// запись: одинаковые значения дают один ключ кеша независимо от того, из
// какого манифеста они пришли.
func (c Config) Hash() Digest {
	h := sha256.New()
	_ = toml.NewEncoder(h).Encode(c)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Combine строит составной ключ кеша: H( content || part1 || part2 ... ).
// Порядок частей должен быть фиксированным у вызывающего.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
