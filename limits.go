package gridview

const (
	DefaultMaxButtonCount = 10
	DefaultPageSize       = 20
	MaxPageSize           = 100
)

func IsNormalizedMaxButtonCount(count int) (int, bool) {
	if count < 1 {
		return DefaultMaxButtonCount, false
	}

	return count, true
}

func NormalizeMaxButtonCount(count int) int {
	ret, _ := IsNormalizedMaxButtonCount(count)
	return ret
}

func IsNormalizedPageSizeMax(size int, maxSize int) (int, bool) {
	if size <= 0 {
		return DefaultPageSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func NormalizePageSizeMax(size int, maxSize int) int {
	ret, _ := IsNormalizedPageSizeMax(size, maxSize)
	return ret
}

func NormalizePageSize(size int) int {
	return NormalizePageSizeMax(size, MaxPageSize)
}
