package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestStore(t *testing.T) {
	tests := []struct {
		name    string
		actions func(s *Store[string], t *testing.T)
	}{
		{
			name: "put and get",
			actions: func(s *Store[string], t *testing.T) {
				s.Put("a", "1")
				if v, ok := s.Get("a"); !ok || v != "1" {
					t.Errorf("expected value=1, got=%q, ok=%v", v, ok)
				}
			},
		},
		{
			name: "get missing key",
			actions: func(s *Store[string], t *testing.T) {
				if _, ok := s.Get("nope"); ok {
					t.Errorf("expected miss for absent key")
				}
			},
		},
		{
			name: "put overwrites",
			actions: func(s *Store[string], t *testing.T) {
				s.Put("a", "1")
				s.Put("a", "2")
				if v, _ := s.Get("a"); v != "2" {
					t.Errorf("expected overwritten value=2, got=%q", v)
				}
			},
		},
		{
			name: "put many",
			actions: func(s *Store[string], t *testing.T) {
				s.PutMany(map[string]string{"a": "1", "b": "2"})
				if s.Len() != 2 {
					t.Errorf("expected len=2, got=%d", s.Len())
				}
				if v, _ := s.Get("b"); v != "2" {
					t.Errorf("expected b=2, got=%q", v)
				}
			},
		},
		{
			name: "update stores result",
			actions: func(s *Store[string], t *testing.T) {
				s.Put("a", "1")
				got, err := s.Update("a", func(cur string, ok bool) (string, error) {
					if !ok || cur != "1" {
						t.Errorf("expected current=1, got=%q, ok=%v", cur, ok)
					}
					return "2", nil
				})
				if err != nil || got != "2" {
					t.Errorf("expected updated=2, got=%q, err=%v", got, err)
				}
				if v, _ := s.Get("a"); v != "2" {
					t.Errorf("expected stored=2, got=%q", v)
				}
			},
		},
		{
			name: "update error leaves store untouched",
			actions: func(s *Store[string], t *testing.T) {
				s.Put("a", "1")
				_, err := s.Update("a", func(cur string, ok bool) (string, error) {
					return "2", errors.New("boom")
				})
				if err == nil {
					t.Fatal("expected error")
				}
				if v, _ := s.Get("a"); v != "1" {
					t.Errorf("expected unchanged value=1, got=%q", v)
				}
			},
		},
		{
			name: "update reports absent key",
			actions: func(s *Store[string], t *testing.T) {
				_, err := s.Update("a", func(cur string, ok bool) (string, error) {
					if ok {
						t.Errorf("expected ok=false for absent key")
					}
					return "1", nil
				})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if v, ok := s.Get("a"); !ok || v != "1" {
					t.Errorf("expected inserted value=1, got=%q, ok=%v", v, ok)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.actions(NewStore[string](), t)
		})
	}
}

func TestStoreConcurrent(t *testing.T) {
	s := NewStore[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Put("k", i)
		}(i)
		go func() {
			defer wg.Done()
			s.Get("k")
		}()
	}
	wg.Wait()
	if _, ok := s.Get("k"); !ok {
		t.Fatal("expected key to be present")
	}
}
