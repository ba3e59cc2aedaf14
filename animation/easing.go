package animation

// EaseFunc maps linear progress in [0,1] to eased progress in [0,1]
type EaseFunc func(p float64) float64

func Linear(p float64) float64 { return p }

func InQuad(p float64) float64 { return p * p }

func OutQuad(p float64) float64 { return 1 - (1-p)*(1-p) }

func InOutQuad(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q/2
}

func InCubic(p float64) float64 { return p * p * p }

func OutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func InOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}

func InQuart(p float64) float64 { return p * p * p * p }

func OutQuart(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q*q
}

func InOutQuart(p float64) float64 {
	if p < 0.5 {
		return 8 * p * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q*q/2
}
