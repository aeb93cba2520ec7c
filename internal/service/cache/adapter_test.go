package cache

import (
	"testing"
	"time"

	pkgcache "HistVol/pkg/cache"
)

func TestServiceAdapterRoundTrip(t *testing.T) {
	a := NewServiceAdapter(pkgcache.NewMemoryCache())

	if err := a.SetBytes("k", []byte(`{"x":1}`), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	b, ok, err := a.GetBytes("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if string(b) != `{"x":1}` {
		t.Fatalf("got %s", b)
	}
}

func TestServiceAdapterMiss(t *testing.T) {
	a := NewServiceAdapter(pkgcache.NewMemoryCache())
	_, ok, err := a.GetBytes("missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}
