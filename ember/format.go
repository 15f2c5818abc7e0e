package ember

import (
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// pickFormat chooses the surface format: the first gamma corrected
// format if the surface reports one, the first reported format
// otherwise.
func pickFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, format := range formats {
		if isSrgb(format) {
			return format
		}
	}

	return formats[0]
}

func isSrgb(format wgpu.TextureFormat) bool {
	return strings.HasSuffix(format.String(), "Srgb")
}
