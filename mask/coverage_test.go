package mask

import "image"
import "testing"

func TestCoverage(t *testing.T) {
	mask := image.NewAlpha(image.Rect(5, -2, 8, 0))
	for i := range mask.Pix { mask.Pix[i] = uint8(i*51) }

	coverage := NewCoverage(mask)
	if coverage.Len() != 6 { t.Fatalf("expected 6 samples, got %d", coverage.Len()) }

	for pass := 0; pass < 2; pass++ {
		count := 0
		for {
			x, y, level, ok := coverage.Next()
			if !ok { break }
			if x != count % 3 || y != count / 3 {
				t.Fatalf("pass %d, sample %d: unexpected local coords (%d, %d)", pass, count, x, y)
			}
			want := float32(count*51)/255.0
			if level != want {
				t.Fatalf("pass %d, sample %d: expected coverage %f, got %f", pass, count, want, level)
			}
			count += 1
		}
		if count != 6 { t.Fatalf("pass %d: expected 6 samples, got %d", pass, count) }
		coverage.Reset()
	}

	// exhausted iterators stay exhausted
	for { if _, _, _, ok := coverage.Next(); !ok { break } }
	if _, _, _, ok := coverage.Next(); ok { t.Fatal("expected exhausted iterator") }
}

func TestCoverageEmpty(t *testing.T) {
	var zero Coverage
	if _, _, _, ok := zero.Next(); ok { t.Fatal("zero value must yield no samples") }
	if zero.Len() != 0 { t.Fatal("zero value must have no samples") }

	empty := NewCoverage(image.NewAlpha(image.Rectangle{}))
	if _, _, _, ok := empty.Next(); ok { t.Fatal("empty mask must yield no samples") }
}
