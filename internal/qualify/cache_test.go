package qualify

import (
	"fmt"
	"testing"
)

func TestResultCachePutGet(t *testing.T) {
	cache := newResultCache(4)

	if _, ok := cache.get("missing"); ok {
		t.Fatalf("empty cache returned a hit")
	}

	cache.put("a", QualificationResult{Score: 80})
	result, ok := cache.get("a")
	if !ok || result.Score != 80 {
		t.Fatalf("get after put = (%v, %v)", result, ok)
	}
}

func TestResultCacheEvictsOldestFirst(t *testing.T) {
	cache := newResultCache(3)

	for i := 0; i < 4; i++ {
		cache.put(fmt.Sprintf("lead-%d", i), QualificationResult{Score: i})
	}

	if _, ok := cache.get("lead-0"); ok {
		t.Fatalf("oldest entry survived eviction")
	}
	for i := 1; i < 4; i++ {
		if _, ok := cache.get(fmt.Sprintf("lead-%d", i)); !ok {
			t.Fatalf("entry lead-%d evicted too early", i)
		}
	}
	if got := cache.len(); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}
}

func TestResultCacheUpdateDoesNotEvict(t *testing.T) {
	cache := newResultCache(2)

	cache.put("a", QualificationResult{Score: 1})
	cache.put("b", QualificationResult{Score: 2})
	cache.put("a", QualificationResult{Score: 3})

	result, ok := cache.get("a")
	if !ok || result.Score != 3 {
		t.Fatalf("updated entry = (%v, %v), want score 3", result, ok)
	}
	if _, ok := cache.get("b"); !ok {
		t.Fatalf("update of existing key evicted another entry")
	}
}
