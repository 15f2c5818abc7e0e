package ember

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
)

func TestPickFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{
			"srgb preferred over earlier linear",
			[]wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
			wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			"first srgb wins",
			[]wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb},
			wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			"no srgb falls back to first",
			[]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm},
			wgpu.TextureFormatRGBA8Unorm,
		},
		{
			"single format",
			[]wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm},
			wgpu.TextureFormatBGRA8Unorm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickFormat(tt.formats); got != tt.want {
				t.Errorf("pickFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSrgb(t *testing.T) {
	if !isSrgb(wgpu.TextureFormatBGRA8UnormSrgb) {
		t.Error("BGRA8UnormSrgb not detected as srgb")
	}

	if isSrgb(wgpu.TextureFormatBGRA8Unorm) {
		t.Error("BGRA8Unorm detected as srgb")
	}
}
