package imagecache

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
)

func TestInsertAndRetrieve(t *testing.T) {
	t.Parallel()

	c := New(4)
	data := []byte{0x89, 0x50, 0x4e, 0x47}
	c.Insert("https://img/a.png", data)

	got, ok := c.Retrieve("https://img/a.png")
	if !ok {
		t.Fatal("Retrieve missed immediately after Insert")
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("Retrieve = %v, want %v", got, data)
	}

	if _, ok := c.Retrieve("https://img/missing.png"); ok {
		t.Fatal("Retrieve hit for a key never inserted")
	}
}

func TestInsert_FirstWriteWins(t *testing.T) {
	t.Parallel()

	c := New(4)
	c.Insert("k", []byte("original"))
	c.Insert("k", []byte("imposter"))

	got, ok := c.Retrieve("k")
	if !ok {
		t.Fatal("Retrieve missed")
	}
	if string(got) != "original" {
		t.Fatalf("Retrieve = %q, want the first inserted value", got)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestInsert_ConcurrentSameKeySingleValue(t *testing.T) {
	t.Parallel()

	c := New(8)
	const writers = 64

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Insert("k", fmt.Appendf(nil, "value-%d", i))
		}()
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	first, ok := c.Retrieve("k")
	if !ok {
		t.Fatal("Retrieve missed after concurrent inserts")
	}
	again, _ := c.Retrieve("k")
	if !bytes.Equal(first, again) {
		t.Fatalf("stored value unstable: %q then %q", first, again)
	}
}

func TestEvictionIsBounded(t *testing.T) {
	t.Parallel()

	c := New(2)
	c.Insert("a", []byte("1"))
	c.Insert("b", []byte("2"))
	c.Insert("c", []byte("3"))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want capacity 2", c.Len())
	}
	if _, ok := c.Retrieve("a"); ok {
		t.Fatal("oldest entry survived past capacity")
	}
	if _, ok := c.Retrieve("c"); !ok {
		t.Fatal("newest entry missing")
	}
}
