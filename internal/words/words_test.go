package words

import "testing"

func TestRandomReturnsListEntry(t *testing.T) {
	if len(List) == 0 {
		t.Fatal("word list is empty")
	}
	members := make(map[string]bool, len(List))
	for _, w := range List {
		if w == "" {
			t.Fatal("empty word in list")
		}
		members[w] = true
	}
	for i := 0; i < 50; i++ {
		if !members[Random()] {
			t.Fatal("Random returned a word not in the list")
		}
	}
}
