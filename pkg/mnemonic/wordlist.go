package mnemonic

import "github.com/tyler-smith/go-bip39/wordlists"

// dictSize is the size of the fixed dictionary; each word encodes an
// 11-bit index.
const dictSize = 2048

// wordList is the fixed English dictionary shared by encode and decode;
// wordIndex is its reverse lookup. Both are read-only after init.
var (
	wordList  = wordlists.English
	wordIndex = make(map[string]uint32, dictSize)
)

func init() {
	if len(wordList) != dictSize {
		panic("mnemonic: dictionary must have exactly 2048 words")
	}
	for i, w := range wordList {
		wordIndex[w] = uint32(i)
	}
}
