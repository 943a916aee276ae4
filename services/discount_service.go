package services

// DiscountService resolves a promo code to its rate. Codes never persist
// into the cart; checkout resolves them again on its own.
type DiscountService struct {
	Store DiscountStore
}

func NewDiscountService(store DiscountStore) *DiscountService {
	return &DiscountService{Store: store}
}

// Resolve returns the configured rate for a known code. Unknown codes
// resolve to rate 0 with ErrInvalidDiscountCode; matching is case-sensitive.
func (s *DiscountService) Resolve(code string) (float64, error) {
	rate, ok, err := s.Store.FindRate(code)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInvalidDiscountCode
	}
	return rate, nil
}
