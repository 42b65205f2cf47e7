package main

import (
	"fmt"

	"github.com/aglyzov/go-trie/prefixset"
	"github.com/aglyzov/go-trie/trie"
)

func main() {
	d := trie.New[byte, int]()
	d.Set([]byte("c"), 1)
	d.Set([]byte("a1"), 3)
	d.Set([]byte("a2"), 4)
	d.Set([]byte("a22"), 6)
	d.Set([]byte("bb"), 7)

	fmt.Println(d)

	if s := d.LongestPrefix([]byte("a223")); s != nil {
		fmt.Printf("longest prefix of a223: %s\n", s.Key())
	}
	if s := d.ShortestPrefix([]byte("a223")); s != nil {
		fmt.Printf("shortest prefix of a223: %s\n", s.Key())
	}

	_ = d.WalkTowards([]byte("a223"), func(s *trie.Step[byte, int]) bool {
		fmt.Printf("%s set=%v subtrie=%v\n", s.Key(), s.IsSet(), s.HasSubtrie())
		return true
	})

	println("------")

	visitor := func(item trie.Item[byte, int]) bool {
		fmt.Printf("%s = %v\n", item.Key, item.Val)
		return true
	}
	_ = d.Iter([]byte("a"), visitor)

	println("------")

	ps := prefixset.New[byte]()
	ps.Add([]byte("/usr/bin/vim"))
	ps.Add([]byte("/usr/bin"))
	ps.Add([]byte("/var/log/syslog"))

	_ = ps.Iter(nil, func(key []byte) bool {
		fmt.Printf("%s\n", key)
		return true
	})
}
