package cloud

// Font size bounds of the rendering scheme. The stylesheet ships classes
// f11 through f47.
const (
	MinFontSize = 11
	MaxFontSize = 47
)

// FontScale maps occurrence counts onto a font-size range linearly.
type FontScale struct {
	Min int
	Max int
}

// DefaultScale returns the f11..f47 scale of the stock stylesheet.
func DefaultScale() FontScale {
	return FontScale{Min: MinFontSize, Max: MaxFontSize}
}

// Size maps count, which must lie in [minCount, maxCount], onto the scale.
// Integer division truncates toward zero. When every selected word shares one
// count (maxCount == minCount) the whole cloud renders at the smallest size.
func (fs FontScale) Size(minCount, maxCount, count int) int {
	if maxCount == minCount {
		return fs.Min
	}
	return fs.Min + (count-minCount)*(fs.Max-fs.Min)/(maxCount-minCount)
}
