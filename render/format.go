package render

import "fmt"

// PixelFormat identifies the memory layout of a surface buffer
// Values match the native window format codes
type PixelFormat int32

const (
	FormatUnknown  PixelFormat = 0
	FormatRGBA8888 PixelFormat = 1
	FormatRGBX8888 PixelFormat = 2
	FormatRGB565   PixelFormat = 4
)

// BytesPerPixel returns the storage size of one pixel, 0 for unknown formats
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatRGBA8888, FormatRGBX8888:
		return 4
	case FormatRGB565:
		return 2
	default:
		return 0
	}
}

// Valid reports whether the format is one of the known layouts
func (f PixelFormat) Valid() bool {
	return f.BytesPerPixel() != 0
}

func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA_8888"
	case FormatRGBX8888:
		return "RGBX_8888"
	case FormatRGB565:
		return "RGB_565"
	default:
		return fmt.Sprintf("Format(%d)", int32(f))
	}
}
