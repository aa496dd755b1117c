package cache

import "image"
import "sync"
import "testing"

func newEmptyGlyphMask(width, height int) GlyphMask {
	return GlyphMask(image.NewAlpha(image.Rect(0, 0, width, height)))
}

func glyphKey(glyph int) Key {
	return Key{ Face: 1, Glyph: uint32(glyph), ScaleX: 64, ScaleY: 64 }
}

func TestDefaultCache(t *testing.T) {
	masks := make([]GlyphMask, 10)
	for i := 0; i < 10; i++ {
		masks[i] = newEmptyGlyphMask(10, 10)
	}
	refSize := GlyphMaskByteSize(masks[0])

	cache := NewDefaultCache(int(refSize*8))
	if cache.ApproxByteSize() != 0 { t.Fatalf("expected %d, got %d", 0, cache.ApproxByteSize()) }
	if cache.PeakSize() != 0 { t.Fatalf("expected %d, got %d", 0, cache.PeakSize()) }

	mask, found := cache.GetMask(glyphKey(1))
	if found { t.Fatal("didn't expect to find mask") }
	if mask != nil { t.Fatal("expected nil mask") }

	cache.PassMask(glyphKey(2), masks[2])
	_, found = cache.GetMask(glyphKey(1))
	if found { t.Fatal("didn't expect to find mask") }
	mask, found = cache.GetMask(glyphKey(2))
	if !found { t.Fatal("expected to find mask") }
	if masks[2] != mask { t.Fatal("nonsensical mask") }

	// keys differing in any field must not collide
	other := glyphKey(2)
	other.Fract = 32
	if _, found = cache.GetMask(other); found { t.Fatal("fract bits must be part of the key") }
	other = glyphKey(2)
	other.ScaleY = 65
	if _, found = cache.GetMask(other); found { t.Fatal("scale must be part of the key") }

	// passing again the same key doesn't duplicate the entry
	cache.PassMask(glyphKey(2), masks[3])
	mask, _ = cache.GetMask(glyphKey(2))
	if mask != masks[2] { t.Fatal("expected original mask to be kept") }
	if cache.ApproxByteSize() != int(refSize) {
		t.Fatalf("expected %d, got %d", refSize, cache.ApproxByteSize())
	}

	for i := 3; i < 10; i++ {
		cache.PassMask(glyphKey(i), masks[i])
	}
	if cache.Len() != 8 { t.Fatalf("expected 8 entries, got %d", cache.Len()) }
	expectSize := int(refSize)*8
	if cache.ApproxByteSize() != expectSize { t.Fatalf("expected %d, got %d", expectSize, cache.ApproxByteSize()) }
	if cache.PeakSize() != expectSize { t.Fatalf("expected %d, got %d", expectSize, cache.PeakSize()) }

	// once the stored entries have cooled down, a new mask evicts one of them
	testInstantNanosHack += 1 << 30
	defer func() { testInstantNanosHack = 0 }()
	cache.PassMask(glyphKey(0), masks[0])
	if _, found = cache.GetMask(glyphKey(0)); !found { t.Fatal("expected mask to be added") }
	if cache.Len() != 8 { t.Fatalf("expected 8 entries, got %d", cache.Len()) }
	if cache.ApproxByteSize() != expectSize { t.Fatalf("expected %d, got %d", expectSize, cache.ApproxByteSize()) }

	missing := 0
	for i := 2; i < 10; i++ {
		if _, found = cache.GetMask(glyphKey(i)); !found { missing += 1 }
	}
	if missing != 1 { t.Fatalf("expected exactly one evicted mask, got %d", missing) }
}

func TestDefaultCacheLimits(t *testing.T) {
	if GlyphMaskByteSize(nil) != constMaskSizeFactor { t.Fatal("assumptions") }

	cache := NewDefaultCache(256)
	cache.PassMask(glyphKey(1), newEmptyGlyphMask(20, 20))
	if cache.Len() != 0 { t.Fatal("masks bigger than the cache must be ignored") }

	cache.PassMask(glyphKey(2), nil)
	mask, found := cache.GetMask(glyphKey(2))
	if !found || mask != nil { t.Fatal("expected cached nil mask") }
	if cache.ApproxByteSize() != constMaskSizeFactor {
		t.Fatalf("expected %d, got %d", constMaskSizeFactor, cache.ApproxByteSize())
	}

	if !panics(func() { NewDefaultCache(-1) }) { t.Fatal("expected panic on negative size") }
}

func TestDefaultCacheConcurrent(t *testing.T) {
	cache := NewDefaultCache(64*1024)
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := glyphKey(i % 50)
				if _, found := cache.GetMask(key); !found {
					cache.PassMask(key, newEmptyGlyphMask(8, 8))
				}
			}
		}(n)
	}
	wg.Wait()

	if cache.ApproxByteSize() > 64*1024 { t.Fatal("cache exceeded its limit") }
	if cache.Len() != 50 { t.Fatalf("expected 50 entries, got %d", cache.Len()) }
	if cache.ApproxByteSize() != 50*int(GlyphMaskByteSize(newEmptyGlyphMask(8, 8))) {
		t.Fatalf("unexpected size %d", cache.ApproxByteSize())
	}
}

func panics(function func()) (didPanic bool) {
	defer func() { didPanic = (recover() != nil) }()
	function()
	return
}
