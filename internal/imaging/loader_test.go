package imaging

import (
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.Len() != 0 {
		t.Errorf("new cache holds %d images", cache.Len())
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTestPNG(t, newSolidImage(100, 60, color.NRGBA{255, 0, 0, 255}))

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x60", bounds.Dx(), bounds.Dy())
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
}

func TestImageCache_Load_Errors(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}

	bad := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(bad); err == nil {
		t.Error("Load should fail for invalid image data")
	}
	if cache.Len() != 0 {
		t.Error("failed loads should not be cached")
	}
}

func TestImageCache_EvictAndClear(t *testing.T) {
	cache := NewImageCache()
	path1 := writeTestPNG(t, newSolidImage(10, 10, color.White))
	path2 := writeTestPNG(t, newSolidImage(10, 10, color.Black))

	if _, err := cache.Load(path1); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := cache.Load(path2); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cache.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", cache.Len())
	}

	cache.Evict(path1)
	if cache.Len() != 1 {
		t.Errorf("after Evict: got %d, want 1", cache.Len())
	}
	cache.Evict("/not/cached.png")

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("after Clear: got %d, want 0", cache.Len())
	}
}

func TestImageCache_Concurrent(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTestPNG(t, newSolidImage(32, 32, color.White))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load failed: %v", err)
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTestPNG(t, newSolidImage(40, 30, color.White))

	info, err := LoadImageInfo(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Width != 40 || info.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}

	// Served from cache the second time, format included.
	again, err := LoadImageInfo(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if again.Format != "png" {
		t.Errorf("cached Format: got %s, want png", again.Format)
	}
}
