package nv12

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		width, height int
		wantErr       bool
	}{
		{2, 2, false},
		{640, 480, false},
		{1920, 1080, false},
		{641, 480, true},
		{640, 481, true},
		{1, 1, true},
		{0, 2, true},
		{2, 0, true},
		{-2, 2, true},
		{2, -4, true},
	}

	for _, tt := range tests {
		err := Validate(tt.width, tt.height)
		if tt.wantErr && err == nil {
			t.Errorf("Validate(%d, %d): expected error", tt.width, tt.height)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Validate(%d, %d): unexpected error: %v", tt.width, tt.height, err)
		}
	}
}

func TestValidate_ErrorCarriesDimensions(t *testing.T) {
	err := Validate(641, 480)

	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected *DimensionError, got %T", err)
	}
	if dimErr.Width != 641 || dimErr.Height != 480 {
		t.Errorf("expected 641x480 in error, got %dx%d", dimErr.Width, dimErr.Height)
	}
	if !errors.Is(err, ErrDimension) {
		t.Error("expected errors.Is(err, ErrDimension)")
	}
	if errors.Is(err, ErrSizeMismatch) {
		t.Error("dimension error must not match ErrSizeMismatch")
	}
}

func TestDimensions(t *testing.T) {
	d := Dimensions{Width: 1920, Height: 1080}

	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Pixels() != 2073600 {
		t.Errorf("expected 2073600 pixels, got %d", d.Pixels())
	}
	if d.FrameSize() != 3110400 {
		t.Errorf("expected frame size 3110400, got %d", d.FrameSize())
	}
	if d.String() != "1920x1080" {
		t.Errorf("expected 1920x1080, got %s", d.String())
	}
}
