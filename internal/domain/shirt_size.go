package domain

type ShirtSize string

const (
	ShirtXS   ShirtSize = "XS"
	ShirtS    ShirtSize = "S"
	ShirtM    ShirtSize = "M"
	ShirtL    ShirtSize = "L"
	ShirtXL   ShirtSize = "XL"
	ShirtXXL  ShirtSize = "XXL"
	ShirtXXXL ShirtSize = "XXXL"
)

// ShirtSizes lists the accepted sizes from smallest to largest.
func ShirtSizes() []ShirtSize {
	return []ShirtSize{ShirtXS, ShirtS, ShirtM, ShirtL, ShirtXL, ShirtXXL, ShirtXXXL}
}

func (s ShirtSize) Valid() bool {
	for _, v := range ShirtSizes() {
		if s == v {
			return true
		}
	}
	return false
}
