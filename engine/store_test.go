package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/ballistic/core"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()

	s.SetComponent(1, 10)
	s.SetComponent(2, 20)

	if v, ok := s.GetComponent(1); !ok || v != 10 {
		t.Errorf("Expected (10, true), got (%d, %v)", v, ok)
	}
	if !s.HasEntity(2) {
		t.Error("Expected entity 2 present")
	}
	if s.CountEntities() != 2 {
		t.Errorf("Expected 2 entities, got %d", s.CountEntities())
	}

	s.SetComponent(1, 11)
	if v, _ := s.GetComponent(1); v != 11 {
		t.Errorf("Expected overwrite to 11, got %d", v)
	}
	if s.CountEntities() != 2 {
		t.Errorf("Expected overwrite to keep count at 2, got %d", s.CountEntities())
	}

	s.RemoveEntity(1)
	if s.HasEntity(1) {
		t.Error("Expected entity 1 removed")
	}
	if s.CountEntities() != 1 {
		t.Errorf("Expected 1 entity after removal, got %d", s.CountEntities())
	}
}

func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[int]()
	for i := core.Entity(1); i <= 10; i++ {
		s.SetComponent(i, int(i))
	}

	s.RemoveBatch([]core.Entity{2, 4, 6, 8, 10, 99})

	if s.CountEntities() != 5 {
		t.Fatalf("Expected 5 entities after batch removal, got %d", s.CountEntities())
	}
	for _, e := range []core.Entity{1, 3, 5, 7, 9} {
		if !s.HasEntity(e) {
			t.Errorf("Expected entity %d to survive", e)
		}
	}
	for _, e := range []core.Entity{2, 4, 6, 8, 10} {
		if s.HasEntity(e) {
			t.Errorf("Expected entity %d removed", e)
		}
	}
}

func TestStoreRangeOrderAndEarlyStop(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(5, 50)
	s.SetComponent(3, 30)
	s.SetComponent(7, 70)

	var seen []core.Entity
	s.Range(func(e core.Entity, v int) bool {
		seen = append(seen, e)
		return true
	})
	want := []core.Entity{5, 3, 7}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Expected insertion order %v, got %v", want, seen)
			break
		}
	}

	count := 0
	s.Range(func(e core.Entity, v int) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("Expected early stop after 2 visits, got %d", count)
	}
}

func TestStoreAppendEntities(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(1, 1)
	s.SetComponent(2, 2)

	buf := make([]core.Entity, 0, 8)
	buf = s.AppendEntities(buf)
	if len(buf) != 2 {
		t.Fatalf("Expected 2 appended entities, got %d", len(buf))
	}

	// Reuse without clearing appends again
	buf = s.AppendEntities(buf)
	if len(buf) != 4 {
		t.Errorf("Expected append to extend to 4, got %d", len(buf))
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(1, 1)
	s.SetComponent(2, 2)

	s.ClearAllComponents()
	if s.CountEntities() != 0 {
		t.Errorf("Expected empty store, got %d entities", s.CountEntities())
	}
	if s.HasEntity(1) {
		t.Error("Expected entity 1 gone after clear")
	}
}

func TestStoreConcurrentReaders(t *testing.T) {
	s := NewStore[int]()
	for i := core.Entity(1); i <= 100; i++ {
		s.SetComponent(i, int(i))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				e := core.Entity(i%100 + 1)
				if v, ok := s.GetComponent(e); !ok || v != int(e) {
					t.Errorf("Expected (%d, true), got (%d, %v)", e, v, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}
