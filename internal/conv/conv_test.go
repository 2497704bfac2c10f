package conv

import "testing"

func TestInt64ToInt(t *testing.T) {
	if got := Int64ToInt(12345); got != 12345 {
		t.Errorf("Int64ToInt(12345) = %d, want 12345", got)
	}
}

func TestInt64ToIntNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int64ToInt(-1) should have panicked")
		}
	}()
	Int64ToInt(-1)
}
