package output

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestSavePNG(t *testing.T) {
	img := testImage(64, 36)
	path := filepath.Join(t.TempDir(), "render.png")

	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen saved render: %v", err)
	}
	bounds := loaded.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 36 {
		t.Errorf("Expected 64x36, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestSaveThumbnail(t *testing.T) {
	img := testImage(64, 36)
	path := filepath.Join(t.TempDir(), "render_thumb.png")

	if err := SaveThumbnail(img, path, 32); err != nil {
		t.Fatalf("SaveThumbnail failed: %v", err)
	}

	loaded, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen thumbnail: %v", err)
	}
	bounds := loaded.Bounds()
	if bounds.Dx() != 32 {
		t.Errorf("Expected thumbnail width 32, got %d", bounds.Dx())
	}
	// Aspect ratio preserved
	if bounds.Dy() != 18 {
		t.Errorf("Expected thumbnail height 18, got %d", bounds.Dy())
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	img := testImage(4, 4)
	if err := SavePNG(img, filepath.Join(t.TempDir(), "missing", "render.png")); err == nil {
		t.Error("Expected error when saving into a missing directory")
	}
}

func TestPublishConfig_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		config   PublishConfig
		expected bool
	}{
		{"empty config", PublishConfig{}, false},
		{"bucket only", PublishConfig{Bucket: "renders"}, true},
		{"credentials without bucket", PublishConfig{AccessKey: "k", SecretKey: "s"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.Enabled(); got != tt.expected {
				t.Errorf("Expected Enabled()=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestLoadPublishConfigFromEnv(t *testing.T) {
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("S3_ENDPOINT", "https://s3.example.test")
	t.Setenv("S3_REGION", "us-east-1")
	t.Setenv("S3_BUCKET", "renders")
	t.Setenv("S3_KEY_PREFIX", "traces/")

	cfg := LoadPublishConfigFromEnv()
	if !cfg.Enabled() {
		t.Fatal("Expected config loaded from env to be enabled")
	}
	if cfg.AccessKey != "key" || cfg.Region != "us-east-1" || cfg.KeyPrefix != "traces/" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}
