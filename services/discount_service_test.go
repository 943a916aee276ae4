package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountService_Resolve(t *testing.T) {
	svc := NewDiscountService(&fakeDiscounts{rates: map[string]float64{"EMMETT": 0.1}})

	tests := []struct {
		name     string
		code     string
		wantRate float64
		wantErr  error
	}{
		{name: "known code", code: "EMMETT", wantRate: 0.1},
		{name: "unknown code", code: "NOPE", wantRate: 0, wantErr: ErrInvalidDiscountCode},
		{name: "matching is case-sensitive", code: "emmett", wantRate: 0, wantErr: ErrInvalidDiscountCode},
		{name: "empty code", code: "", wantRate: 0, wantErr: ErrInvalidDiscountCode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := svc.Resolve(tc.code)
			assert.Equal(t, tc.wantRate, rate)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	// 160.00 with EMMETT (10%) → 144.00
	assert.Equal(t, int64(14400), ApplyDiscount(16000, 0.1))
	assert.Equal(t, int64(16000), ApplyDiscount(16000, 0))
	// discount amount rounds to the nearest centavo: 99 × 0.1 → 10
	assert.Equal(t, int64(89), ApplyDiscount(99, 0.1))
}
