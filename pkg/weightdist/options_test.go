package weightdist

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Containers != 5 {
		t.Errorf("DefaultOptions().Containers = %d, expected 5", opts.Containers)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("default options should validate, got %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		containers int
		valid      bool
	}{
		{1, true},
		{5, true},
		{100, true},
		{0, false},
		{-1, false},
	}

	for _, tt := range tests {
		err := Options{Containers: tt.containers}.Validate()
		if tt.valid && err != nil {
			t.Errorf("Containers=%d: unexpected error %v", tt.containers, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidContainerCount) {
			t.Errorf("Containers=%d: expected ErrInvalidContainerCount, got %v", tt.containers, err)
		}
	}
}
